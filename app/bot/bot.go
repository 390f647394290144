// Package bot contains routes and controllers of the console reader.
package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Nachthirsch/News-App/app/feed"
	"github.com/Nachthirsch/News-App/app/news"
	"github.com/Nachthirsch/News-App/app/store"
	"github.com/Nachthirsch/News-App/pkg/botx"
	"github.com/Nachthirsch/News-App/pkg/botx/botmw"
	"golang.org/x/exp/slog"
)

//go:generate moq -out mock_service.go . Service

// Service defines methods of the news service used by the controller.
type Service interface {
	LocalNews(ctx context.Context, page int) (news.Page, error)
	ProgrammingNews(ctx context.Context, page int) (news.Page, error)
	Search(ctx context.Context, query string, page int, provider news.Provider) (news.Page, error)
	WireNews(ctx context.Context, source, section string, limit, offset int) (news.Page, error)
	WireSections(ctx context.Context) ([]store.Section, error)
	CacheStat() string
}

// Ctrl provides routes and controllers for console commands.
type Ctrl struct {
	Logger         *slog.Logger
	Service        Service
	Feeds          *feed.Feeds
	Bookmarks      *feed.Bookmarks
	Provider       news.Provider
	HandlerTimeout time.Duration

	mu    sync.Mutex
	shown []store.Article // last listed articles, addressed by /save and /unsave
}

// Routes returns a multiplexer for console commands.
func (c *Ctrl) Routes() *botx.Router {
	rtr := botx.NewRouter()

	rtr.Use(
		botmw.RequestID(),
		botmw.AppendRequestIDOnError(),
		botmw.Recover(c.Logger),
		botmw.Logger(c.Logger),
	)

	rtr.NotFound(c.searchText)
	rtr.Add("/help", c.help)
	rtr.Add("/saved", c.saved)
	rtr.Add("/save", c.save)
	rtr.Add("/unsave", c.unsave)
	rtr.Add("/cache", c.cacheStats)

	rtr.Group(func(rtr *botx.Router) {
		if c.HandlerTimeout > 0 {
			rtr.Use(botmw.Timeout(c.HandlerTimeout))
		}

		rtr.Add("/local", c.local)
		rtr.Add("/programming", c.programming)
		rtr.Add("/search", c.search)
		rtr.Add("/more", c.more)
		rtr.Add("/sections", c.sections)
		rtr.Add("/wire", c.wire)
		rtr.Add("/provider", c.provider)
	})

	return rtr
}

const helpText = `Commands:
/local                 - news about Indonesia
/programming           - news about programming
/search <text>         - search news, "section:<name>" picks a times wire section
/more <surface>        - load the next page of local, programming or search
/provider <name>       - search with articlesearch or timeswire
/sections              - list times wire sections
/wire <section> [page] - browse a times wire section
/save <n>, /unsave <n> - bookmark the n-th article of the last list
/saved                 - list bookmarks
/cache                 - response cache stats
Any other text is searched for.`

func (c *Ctrl) help(_ context.Context, req botx.Request) ([]botx.Response, error) {
	return c.reply(req, helpText), nil
}

func (c *Ctrl) local(ctx context.Context, req botx.Request) ([]botx.Response, error) {
	c.Feeds.ResetPage(feed.SurfaceLocal)
	return c.fetch(ctx, req, feed.SurfaceLocal, 0, true, "")
}

func (c *Ctrl) programming(ctx context.Context, req botx.Request) ([]botx.Response, error) {
	c.Feeds.ResetPage(feed.SurfaceProgramming)
	return c.fetch(ctx, req, feed.SurfaceProgramming, 0, true, "")
}

func (c *Ctrl) search(ctx context.Context, req botx.Request) ([]botx.Response, error) {
	query := req.Args()
	if query == "" {
		return c.reply(req, "Please, provide a search query, e.g. /search technology"), nil
	}

	c.Feeds.ResetPage(feed.SurfaceSearch)
	return c.fetch(ctx, req, feed.SurfaceSearch, 0, true, query)
}

func (c *Ctrl) searchText(ctx context.Context, req botx.Request) ([]botx.Response, error) {
	if strings.HasPrefix(req.Text, "/") {
		return botx.NotFound(ctx, req)
	}

	req.Text = "/search " + req.Text
	return c.search(ctx, req)
}

func (c *Ctrl) more(ctx context.Context, req botx.Request) ([]botx.Response, error) {
	surface, err := feed.ParseSurface(req.Args())
	if err != nil {
		return c.reply(req, "Please, specify what to load: local, programming or search."), nil
	}

	st := c.Feeds.State(surface)
	if surface == feed.SurfaceSearch && st.Query == "" {
		return c.reply(req, "Nothing to load, search for something first."), nil
	}

	return c.fetch(ctx, req, surface, st.Page+1, false, st.Query)
}

// fetch loads the page of the surface and renders the surface state.
func (c *Ctrl) fetch(
	ctx context.Context,
	req botx.Request,
	surface feed.Surface,
	page int,
	isNew bool,
	query string,
) ([]botx.Response, error) {
	ticket := c.Feeds.Begin(surface, page, feed.IsNewFetch(page, isNew), query)

	var res news.Page
	var err error

	switch surface {
	case feed.SurfaceLocal:
		res, err = c.Service.LocalNews(ctx, page)
	case feed.SurfaceProgramming:
		res, err = c.Service.ProgrammingNews(ctx, page)
	case feed.SurfaceSearch:
		res, err = c.Service.Search(ctx, query, page, c.currentProvider())
	}

	if err != nil {
		c.Feeds.Fail(ticket, err)
		c.Logger.WarnCtx(ctx, "failed to fetch news",
			slog.String("surface", surface.String()), slog.Int("page", page), slog.Any("err", err))
		return c.reply(req, c.renderState(surface)), nil
	}

	if !c.Feeds.Fulfil(ticket, res.Articles) {
		return c.reply(req, "Results are outdated, a newer request replaced them."), nil
	}

	return c.reply(req, c.renderState(surface)), nil
}

func (c *Ctrl) sections(ctx context.Context, req botx.Request) ([]botx.Response, error) {
	sections, err := c.Service.WireSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("get sections: %w", err)
	}

	return c.reply(req, renderSections(sections)), nil
}

func (c *Ctrl) wire(ctx context.Context, req botx.Request) ([]botx.Response, error) {
	section, page := news.AllSections, 0

	fields := strings.Fields(req.Args())
	if len(fields) > 0 {
		section = fields[0]
	}
	if len(fields) > 1 {
		p, err := strconv.Atoi(fields[1])
		if err != nil || p < 0 {
			return c.reply(req, "Page must be a non-negative number."), nil
		}
		page = p
	}

	res, err := c.Service.WireNews(ctx, news.AllSections, section, news.WirePageSize, page*news.WirePageSize)
	if err != nil {
		return nil, fmt.Errorf("get times wire news: %w", err)
	}

	title := fmt.Sprintf("Times Wire, section %s, page %d", section, page)
	return c.reply(req, c.renderList(title, res.Articles)), nil
}

// provider switches the search provider. The current search, if any, is
// started over, so its pages never mix results of different providers.
func (c *Ctrl) provider(ctx context.Context, req botx.Request) ([]botx.Response, error) {
	if req.Args() == "" {
		return c.reply(req, fmt.Sprintf("Searching with %s.", c.currentProvider())), nil
	}

	p, err := news.ParseProvider(req.Args())
	if err != nil {
		return c.reply(req, "Unknown provider, use articlesearch or timeswire."), nil
	}

	c.mu.Lock()
	c.Provider = p
	c.mu.Unlock()

	c.Feeds.ResetPage(feed.SurfaceSearch)
	resps := c.reply(req, fmt.Sprintf("Searching with %s now.", p))

	query := c.Feeds.State(feed.SurfaceSearch).Query
	if query == "" {
		return resps, nil
	}

	fetched, err := c.fetch(ctx, req, feed.SurfaceSearch, 0, true, query)
	return append(resps, fetched...), err
}

func (c *Ctrl) saved(_ context.Context, req botx.Request) ([]botx.Response, error) {
	return c.reply(req, c.renderList("Saved articles", c.Bookmarks.List())), nil
}

func (c *Ctrl) save(ctx context.Context, req botx.Request) ([]botx.Response, error) {
	a, ok := c.pick(req.Args())
	if !ok {
		return c.reply(req, noArticleMsg), nil
	}

	if !c.Bookmarks.Add(ctx, a) {
		return c.reply(req, fmt.Sprintf("%q is already saved.", a.Headline.Main)), nil
	}

	return c.reply(req, fmt.Sprintf("Saved %q.", a.Headline.Main)), nil
}

func (c *Ctrl) unsave(ctx context.Context, req botx.Request) ([]botx.Response, error) {
	a, ok := c.pick(req.Args())
	if !ok {
		return c.reply(req, noArticleMsg), nil
	}

	if !c.Bookmarks.Remove(ctx, a.WebURL) {
		return c.reply(req, fmt.Sprintf("%q is not saved.", a.Headline.Main)), nil
	}

	return c.reply(req, fmt.Sprintf("Removed %q from saved.", a.Headline.Main)), nil
}

func (c *Ctrl) cacheStats(_ context.Context, req botx.Request) ([]botx.Response, error) {
	return c.reply(req, c.Service.CacheStat()), nil
}

const noArticleMsg = "Please, provide the number of an article from the last list."

// pick returns the article of the last list by its 1-based number.
func (c *Ctrl) pick(arg string) (store.Article, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return store.Article{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if n < 1 || n > len(c.shown) {
		return store.Article{}, false
	}

	return c.shown[n-1], true
}

func (c *Ctrl) currentProvider() news.Provider {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Provider == "" {
		return news.ProviderSearch
	}
	return c.Provider
}

func (c *Ctrl) reply(req botx.Request, text string) []botx.Response {
	return []botx.Response{{Session: req.Session, Text: text}}
}

// Package news contains the service fetching articles from upstream news
// providers with caching and query routing.
package news

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Nachthirsch/News-App/app/store"
	"github.com/Nachthirsch/News-App/app/upstream"
	"golang.org/x/exp/slog"
)

// Logical endpoints, used as cache key namespaces.
const (
	EndpointLocal        = "local"
	EndpointProgramming  = "programming"
	EndpointSearch       = "search"
	EndpointWire         = "timeswire"
	EndpointWireSections = "timeswire-sections"
)

// Queries of the fixed topic feeds.
const (
	LocalQuery       = "Indonesia"
	ProgrammingQuery = "Programming or Coding or Software Development"
)

const maxBodySize = 10 << 20

// Page is a page of normalized articles.
type Page struct {
	Articles []store.Article
}

// Params defines parameters of the Service.
type Params struct {
	APIKey    string
	SearchURL string
	WireURL   string
	Cache     *Cache
}

// Service fetches articles from the article search and times wire APIs.
// Rate limiting is expected to be done by the client's transport.
type Service struct {
	log *slog.Logger
	cl  *http.Client
	Params
}

// NewService creates new service.
func NewService(lg *slog.Logger, cl *http.Client, params Params) (*Service, error) {
	var missing []string
	if params.APIKey == "" {
		missing = append(missing, "api key")
	}
	if params.SearchURL == "" {
		missing = append(missing, "article search url")
	}
	if params.WireURL == "" {
		missing = append(missing, "times wire url")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrConfig, strings.Join(missing, ", "))
	}

	if params.Cache == nil {
		params.Cache = NewCache(CacheOpts{})
	}

	return &Service{log: lg, cl: cl, Params: params}, nil
}

// CacheStat returns response cache statistics.
func (s *Service) CacheStat() string {
	st := s.Cache.Stat()
	return fmt.Sprintf("hits: %d, misses: %d, evictions: %d, added: %d", st.Hits, st.Misses, st.Evicted, st.Added)
}

// LocalNews returns the page of the local news feed.
func (s *Service) LocalNews(ctx context.Context, page int) (Page, error) {
	return s.searchArticles(ctx, EndpointLocal, LocalQuery, page)
}

// ProgrammingNews returns the page of the programming news feed.
func (s *Service) ProgrammingNews(ctx context.Context, page int) (Page, error) {
	return s.searchArticles(ctx, EndpointProgramming, ProgrammingQuery, page)
}

// Search returns the page of articles matching the query at the given provider.
func (s *Service) Search(ctx context.Context, query string, page int, provider Provider) (Page, error) {
	r := Route(query, provider, page)
	if r.Provider == ProviderWire {
		s.log.DebugCtx(ctx, "search routed to times wire",
			slog.String("query", query), slog.String("section", r.Section))
		return s.WireNews(ctx, r.Source, r.Section, r.Limit, r.Offset)
	}

	key := Key(EndpointSearch, url.Values{
		"q":        {query},
		"page":     {strconv.Itoa(page)},
		"provider": {string(ProviderSearch)},
	})

	return s.fetchArticles(ctx, key, upstream.KindSearch, s.SearchURL, "/articlesearch.json", searchParams(query, page))
}

// WireNews returns the times wire articles of the source and section.
func (s *Service) WireNews(ctx context.Context, source, section string, limit, offset int) (Page, error) {
	if source == "" {
		source = AllSections
	}
	if section == "" {
		section = AllSections
	}
	if limit <= 0 {
		limit = WirePageSize
	}

	params := url.Values{
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}

	key := Key(EndpointWire, url.Values{
		"source":  {source},
		"section": {section},
		"limit":   {strconv.Itoa(limit)},
		"offset":  {strconv.Itoa(offset)},
	})

	path := fmt.Sprintf("/content/%s/%s.json", url.PathEscape(source), url.PathEscape(section))
	return s.fetchArticles(ctx, key, upstream.KindWire, s.WireURL, path, params)
}

// WireSections returns the list of times wire sections.
func (s *Service) WireSections(ctx context.Context) ([]store.Section, error) {
	key := Key(EndpointWireSections, url.Values{})

	if data, ok := s.Cache.Get(key); ok {
		return data.([]store.Section), nil
	}

	body, err := s.get(ctx, s.WireURL, "/content/section-list.json", url.Values{})
	if err != nil {
		if data, ok := s.fallback(ctx, key, err); ok {
			return data.([]store.Section), nil
		}
		return nil, err
	}

	sections, err := upstream.ParseSections(body)
	if err != nil {
		return nil, fmt.Errorf("parse sections: %w", err)
	}

	s.Cache.Set(key, sections)
	return sections, nil
}

func (s *Service) searchArticles(ctx context.Context, endpoint, query string, page int) (Page, error) {
	params := searchParams(query, page)
	return s.fetchArticles(ctx, Key(endpoint, params), upstream.KindSearch, s.SearchURL, "/articlesearch.json", params)
}

func (s *Service) fetchArticles(
	ctx context.Context,
	key string,
	kind upstream.Kind,
	base, path string,
	params url.Values,
) (Page, error) {
	if data, ok := s.Cache.Get(key); ok {
		s.log.DebugCtx(ctx, "using cached response", slog.String("key", key))
		return data.(Page), nil
	}

	body, err := s.get(ctx, base, path, params)
	if err != nil {
		if data, ok := s.fallback(ctx, key, err); ok {
			return data.(Page), nil
		}
		return Page{}, err
	}

	payload, err := upstream.Parse(body)
	if err != nil {
		return Page{}, fmt.Errorf("parse %s response: %w", kind, err)
	}

	if payload.Kind != kind {
		return Page{}, fmt.Errorf("parse %s response: %w", kind,
			&upstream.ParseError{Reason: fmt.Sprintf("got %s payload", payload.Kind)})
	}

	res := Page{Articles: payload.Articles()}
	s.Cache.Set(key, res)
	return res, nil
}

// fallback returns a cached response of any age when the upstream rate
// limited the request. It returns false for any other error, or when
// nothing was cached.
func (s *Service) fallback(ctx context.Context, key string, err error) (any, bool) {
	if !errors.Is(err, ErrRateLimited) {
		return nil, false
	}

	data, ok := s.Cache.Stale(key)
	if ok {
		s.log.WarnCtx(ctx, "rate limited, returning cached response", slog.String("key", key))
	}
	return data, ok
}

func (s *Service) get(ctx context.Context, base, path string, params url.Values) ([]byte, error) {
	u, err := url.Parse(strings.TrimSuffix(base, "/") + path)
	if err != nil {
		return nil, fmt.Errorf("%w: parse url: %v", ErrConfig, err)
	}

	q := u.Query()
	for k, vals := range params {
		q[k] = vals
	}
	q.Set("api-key", s.APIKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.cl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !ok {
		return nil, &UpstreamError{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}

func searchParams(query string, page int) url.Values {
	return url.Values{
		"q":    {query},
		"sort": {"relevance"},
		"page": {strconv.Itoa(page)},
	}
}

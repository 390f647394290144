package bot

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Nachthirsch/News-App/app/feed"
	"github.com/Nachthirsch/News-App/app/store"
)

type listedArticle struct {
	N     int
	Saved bool
	store.Article
}

var listTmpl = template.Must(template.New("list").Parse(
	`{{.Title}}{{if .Error}}
error: {{.Error}}{{end}}
{{range .Articles}}
{{.N}}. {{if .Saved}}[saved] {{end}}{{.Headline.Main}}
   {{.Byline.Original}} | {{.Source}}{{with .SectionName}} | {{.}}{{end}}{{if .IsFromWireFeed}} | wire{{end}}
   {{.Abstract}}
   {{.WebURL}}
   image: {{.ImageURL}}
{{else}}
no articles
{{end}}`))

// renderList renders the articles and remembers them to be addressed by number.
func (c *Ctrl) renderList(title string, articles []store.Article) string {
	return c.render(title, "", articles)
}

func (c *Ctrl) renderState(s feed.Surface) string {
	st := c.Feeds.State(s)

	title := fmt.Sprintf("%s news, page %d", s, st.Page)
	if s == feed.SurfaceSearch {
		title = fmt.Sprintf("Search %q with %s, page %d", st.Query, c.currentProvider(), st.Page)
	}

	return c.render(title, st.Error, st.Items)
}

func (c *Ctrl) render(title, errMsg string, articles []store.Article) string {
	c.mu.Lock()
	c.shown = articles
	c.mu.Unlock()

	listed := make([]listedArticle, 0, len(articles))
	for i, a := range articles {
		listed = append(listed, listedArticle{N: i + 1, Saved: c.Bookmarks.Contains(a.WebURL), Article: a})
	}

	sb := &strings.Builder{}
	err := listTmpl.Execute(sb, struct {
		Title    string
		Error    string
		Articles []listedArticle
	}{Title: title, Error: errMsg, Articles: listed})
	if err != nil {
		return fmt.Sprintf("failed to render articles: %v", err)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func renderSections(sections []store.Section) string {
	sb := &strings.Builder{}
	_, _ = sb.WriteString("Times Wire sections:\n")
	for _, s := range sections {
		_, _ = sb.WriteString(fmt.Sprintf("%s (%s)\n", s.DisplayName, s.Section))
	}
	return strings.TrimRight(sb.String(), "\n")
}

package reader

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/use-agent/readable/render"
)

// Document is a successfully extracted article.
type Document struct {
	URL          *url.URL
	PageTitle    string
	ArticleTitle string

	// Content is the serialized article HTML.
	Content string

	// StatusCode is the upstream response status.
	StatusCode int

	// Retrieved is the formatted retrieval time.
	Retrieved string
}

func orDefault(s string) string {
	if s == "" {
		return render.DefaultTitle
	}
	return s
}

// Header is the retrieval line shown above the article.
func (d *Document) Header() string {
	u := html.EscapeString(d.URL.String())
	return fmt.Sprintf(`A readable version of <a class="shortened" href="%s">%s</a><br />retrieved on %s`,
		u, u, d.Retrieved)
}

// Page returns the template values for the document. Titles are escaped;
// content is inserted as markup.
func (d *Document) Page() render.Page {
	return render.Page{
		PageTitle:    html.EscapeString(orDefault(d.PageTitle)),
		ArticleTitle: html.EscapeString(orDefault(d.ArticleTitle)),
		Header:       d.Header(),
		Content:      d.Content,
		Canonical:    html.EscapeString(d.URL.String()),
	}
}

// HTML renders the document as a full page.
func (d *Document) HTML() string {
	return render.Render(d.Page())
}

// MarkdownPage wraps already converted Markdown content with the article
// title and retrieval line.
func (d *Document) MarkdownPage(content string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", orDefault(d.ArticleTitle))
	fmt.Fprintf(&b, "> A readable version of <%s>, retrieved on %s\n\n", d.URL.String(), d.Retrieved)
	b.WriteString(strings.TrimSpace(content))
	b.WriteString("\n")
	return b.String()
}

// Package render fills the page template with article or error content.
//
// Substitution is literal: values are inserted as-is, so callers must escape
// anything that is plain text rather than markup.
package render

import (
	_ "embed"
	"strings"
)

//go:embed templates/page.html
var pageTemplate string

//go:embed templates/index.html
var indexContent string

// DefaultTitle is used for either title when the page does not provide one.
const DefaultTitle = "Readable"

// Page holds the values substituted into the template.
type Page struct {
	PageTitle    string
	ArticleTitle string
	Header       string
	Content      string

	// Canonical is the source URL. Empty means no canonical link.
	Canonical string
}

// Render substitutes the page into the template. Every placeholder is
// replaced in a single pass; inserted values are never rescanned.
func Render(p Page) string {
	canonical := ""
	if p.Canonical != "" {
		canonical = `<link rel="canonical" href="` + p.Canonical + `" />`
	}

	r := strings.NewReplacer(
		"{{page_title}}", p.PageTitle,
		"{{article_title}}", p.ArticleTitle,
		"{{header}}", p.Header,
		"{{content}}", p.Content,
		"{{canonical}}", canonical,
	)
	return r.Replace(pageTemplate)
}

// Index renders the landing page.
func Index() string {
	return Render(Page{
		PageTitle:    "Readable.",
		ArticleTitle: "Readable",
		Header: `A simple web service to extract the main content from an article<br /> and format it for <i>reading</i>.
        Source code <a href="https://github.com/use-agent/readable">here</a>.`,
		Content: indexContent,
	})
}

// Error renders a failure page. Error pages never carry a canonical link.
func Error(title, header, message string) string {
	return Render(Page{
		PageTitle:    title,
		ArticleTitle: title,
		Header:       header,
		Content:      message,
	})
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeText escapes s for use as HTML element text. Quotes are left as-is
// so error messages stay readable.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

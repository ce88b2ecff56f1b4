package cleaner

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DocumentTitle returns the page's <title>, falling back to og:title.
// Returns "" when neither is present or the HTML cannot be parsed.
func DocumentTitle(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}

	og, _ := doc.Find(`meta[property="og:title"]`).First().Attr("content")
	return strings.TrimSpace(og)
}

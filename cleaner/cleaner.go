package cleaner

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/andybalholm/cascadia"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"

	"github.com/use-agent/readable/config"
)

// Cleaner turns a fetched page into its readable content tree.
//
//	Stage 1 (readability): pick the main content node, drop nav/sidebar/ads
//	Stage 2 (strip):       remove configured selectors from that node
//
// Compiled selectors and the Markdown converter are shared across requests
// and are goroutine-safe.
type Cleaner struct {
	strip       []cascadia.Sel
	mdConverter *converter.Converter
}

// Article is the extraction result. Root is nil when readability found no
// content. Either title may be empty.
type Article struct {
	Root         *html.Node
	PageTitle    string
	ArticleTitle string
}

// NewCleaner compiles the strip selectors. An invalid selector is a
// configuration error.
func NewCleaner(cfg config.CleanerConfig) (*Cleaner, error) {
	sels := make([]cascadia.Sel, 0, len(cfg.StripSelectors))
	for _, s := range cfg.StripSelectors {
		sel, err := cascadia.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("cleaner: strip selector %q: %w", s, err)
		}
		sels = append(sels, sel)
	}
	return &Cleaner{
		strip:       sels,
		mdConverter: newMarkdownConverter(),
	}, nil
}

// Extract runs readability on rawHTML, which must already be UTF-8 text.
// base resolves relative links and image sources inside the article.
func (c *Cleaner) Extract(rawHTML string, base *url.URL) (*Article, error) {
	// readability.FromReader would sniff the charset again and mangle text
	// that was decoded upstream.
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	article, err := readability.FromDocument(doc, base)
	if err != nil {
		return nil, fmt.Errorf("readability: %w", err)
	}

	root := article.Node
	if root != nil {
		removed := c.stripNodes(root)
		if removed > 0 {
			slog.Debug("cleaner: stripped nodes", "url", base.String(), "count", removed)
		}
	}

	return &Article{
		Root:         root,
		PageTitle:    DocumentTitle(rawHTML),
		ArticleTitle: strings.TrimSpace(article.Title),
	}, nil
}

// stripNodes detaches every descendant of root matching a strip selector and
// returns how many were removed.
func (c *Cleaner) stripNodes(root *html.Node) int {
	removed := 0
	for _, sel := range c.strip {
		for _, n := range cascadia.QueryAll(root, sel) {
			if n.Parent != nil {
				n.Parent.RemoveChild(n)
				removed++
			}
		}
	}
	return removed
}

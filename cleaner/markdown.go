package cleaner

import (
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

// newMarkdownConverter creates a reusable, goroutine-safe Converter:
//
//   - base plugin: strips script, style, iframe, noscript, head, meta, link
//     and HTML comments.
//   - commonmark plugin: headings, lists, links, code blocks, emphasis,
//     blockquotes.
//   - table plugin: keeps tables as Markdown tables.
func newMarkdownConverter() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(
				table.WithCellPaddingBehavior(table.CellPaddingBehaviorMinimal),
			),
		),
	)
}

// ToMarkdown converts article HTML to Markdown. domain resolves relative
// URLs in links and images.
func (c *Cleaner) ToMarkdown(htmlContent string, domain string) (string, error) {
	return c.mdConverter.ConvertString(htmlContent, converter.WithDomain(domain))
}

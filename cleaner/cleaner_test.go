package cleaner

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/use-agent/readable/config"
)

func newTestCleaner(t *testing.T, selectors ...string) *Cleaner {
	t.Helper()
	c, err := NewCleaner(config.CleanerConfig{StripSelectors: selectors})
	require.NoError(t, err)
	return c
}

func TestNewCleaner_InvalidSelector(t *testing.T) {
	_, err := NewCleaner(config.CleanerConfig{StripSelectors: []string{"div[", "p"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), `"div["`)
}

func TestExtract_MainContentOnly(t *testing.T) {
	c := newTestCleaner(t, "script")
	base, _ := url.Parse("https://example.com/news/storm")

	article, err := c.Extract(articlePage("Test Title"), base)
	require.NoError(t, err)
	require.NotNil(t, article.Root)
	require.Equal(t, "Test Title", article.PageTitle)
	require.NotEmpty(t, article.ArticleTitle)

	out, err := Serialize(article.Root)
	require.NoError(t, err)
	content := string(out)

	require.Contains(t, content, "The harbour was quiet that morning")
	for _, noise := range []string{"NAVIGATION-HOME", "SIDEBAR-ADVERT", "FOOTER-COPYRIGHT", "trackReader"} {
		require.NotContains(t, content, noise)
	}
}

func TestExtract_ResolvesRelativeURLs(t *testing.T) {
	c := newTestCleaner(t)
	base, _ := url.Parse("https://example.com/news/storm")

	article, err := c.Extract(articlePage("Test Title"), base)
	require.NoError(t, err)

	out, err := Serialize(article.Root)
	require.NoError(t, err)
	require.Contains(t, string(out), "https://example.com/images/harbour.jpg")
	require.Contains(t, string(out), "https://example.com/more")
}

func TestExtract_KeepsDecodedText(t *testing.T) {
	c := newTestCleaner(t)
	base, _ := url.Parse("https://example.com/news/storm")
	page := strings.Replace(articlePage("Café"), "The harbour was quiet", "Le café était calme \uFFFD 港口", 1)

	article, err := c.Extract(page, base)
	require.NoError(t, err)
	require.Equal(t, "Café", article.PageTitle)

	out, err := Serialize(article.Root)
	require.NoError(t, err)
	content := string(out)
	require.Contains(t, content, "Le café était calme \uFFFD 港口")
	require.NotContains(t, content, "Ã")
	require.NotContains(t, content, "ï¿½")
}

func TestExtract_EmptyDocument(t *testing.T) {
	c := newTestCleaner(t)
	base, _ := url.Parse("https://example.com/empty")

	article, err := c.Extract("", base)
	require.NoError(t, err)
	require.Nil(t, article.Root)
	require.Empty(t, article.PageTitle)

	_, err = Serialize(article.Root)
	require.ErrorIs(t, err, ErrNoContent)
}

func TestStripNodes(t *testing.T) {
	c := newTestCleaner(t, "script", ".ad")
	doc, err := html.Parse(strings.NewReader(`<div><p>keep</p><div class="ad"><script>x()</script>buy</div><script>y()</script></div>`))
	require.NoError(t, err)

	removed := c.stripNodes(doc)

	require.Equal(t, 3, removed)
	out, err := Serialize(doc)
	require.NoError(t, err)
	require.Contains(t, string(out), "<p>keep</p>")
	require.NotContains(t, string(out), "buy")
	require.NotContains(t, string(out), "script")
}

func TestSerialize_NilRoot(t *testing.T) {
	_, err := Serialize(nil)
	require.ErrorIs(t, err, ErrNoContent)
}

func TestDocumentTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"title tag", `<html><head><title> Hello </title></head></html>`, "Hello"},
		{"og fallback", `<html><head><meta property="og:title" content="From OG"></head></html>`, "From OG"},
		{"title wins over og", `<html><head><title>T</title><meta property="og:title" content="O"></head></html>`, "T"},
		{"none", `<html><body><p>x</p></body></html>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DocumentTitle(tt.html))
		})
	}
}

func TestToMarkdown(t *testing.T) {
	c := newTestCleaner(t)

	md, err := c.ToMarkdown(`<h2>Heading</h2><p>Some <strong>bold</strong> text and a <a href="/x">link</a>.</p>`, "https://example.com")

	require.NoError(t, err)
	require.Contains(t, md, "## Heading")
	require.Contains(t, md, "**bold**")
	require.Contains(t, md, "[link](https://example.com/x)")
}

package cleaner

import (
	"fmt"
	"strings"
)

// articlePage builds a page with navigation, a sidebar and a long article so
// readability has a clear main-content candidate.
func articlePage(title string) string {
	var paras strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&paras, "<p>Paragraph %d of the story. The harbour was quiet that morning, and the fishermen "+
			"mended their nets while the gulls argued over scraps. Nobody expected the storm that would "+
			"arrive before noon, least of all the ferry captain, who had crossed the strait a thousand times.</p>\n", i)
	}
	return `<!DOCTYPE html>
<html>
<head>
<title>` + title + `</title>
<meta property="og:title" content="OG Title">
</head>
<body>
<nav class="menu">
  <a href="/">NAVIGATION-HOME</a> <a href="/news">NAVIGATION-NEWS</a> <a href="/about">NAVIGATION-ABOUT</a>
</nav>
<div class="sidebar">
  <a href="/ad">SIDEBAR-ADVERT</a> <a href="/promo">SIDEBAR-PROMO</a>
</div>
<article>
<h1>The Storm</h1>
` + paras.String() + `
<p><img src="/images/harbour.jpg" alt="harbour"> <a href="/more">read more about the harbour</a></p>
<script>trackReader()</script>
</article>
<footer class="footer">FOOTER-COPYRIGHT</footer>
</body>
</html>`
}

// Package static holds the compiled-in assets served under /static/.
//
// TODO: fonts/Crimson.woff2 and fonts/JetBrainsMono.woff2 are OFL stand-ins
// (Source Serif 4 and Source Code Pro); replace them with the Crimson Pro and
// JetBrains Mono woff2 builds before release.
package static

import (
	"embed"
	"io/fs"
)

//go:embed fonts/*.woff2 style.css
var files embed.FS

// Asset is a static payload served at a fixed path.
type Asset struct {
	Path        string
	ContentType string
	Content     []byte
}

// Assets returns every static asset with its route and content type.
// An asset whose file is missing from the embedded set has nil Content.
func Assets() []Asset {
	return []Asset{
		{Path: "/static/Crimson.woff2", ContentType: "text/woff2", Content: readAsset("fonts/Crimson.woff2")},
		{Path: "/static/JetBrainsMono.woff2", ContentType: "font/woff2", Content: readAsset("fonts/JetBrainsMono.woff2")},
		{Path: "/static/style.css", ContentType: "text/css; charset=utf-8", Content: readAsset("style.css")},
	}
}

func readAsset(name string) []byte {
	b, err := fs.ReadFile(files, name)
	if err != nil {
		return nil
	}
	return b
}

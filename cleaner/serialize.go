package cleaner

import (
	"bytes"
	"errors"

	"golang.org/x/net/html"
)

// ErrNoContent is returned by Serialize when readability found no content.
var ErrNoContent = errors.New("no readable content found")

// Serialize renders the content tree back to HTML bytes.
func Serialize(root *html.Node) ([]byte, error) {
	if root == nil {
		return nil, ErrNoContent
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

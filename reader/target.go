package reader

import (
	"errors"
	"net/url"
	"strings"

	"github.com/use-agent/readable/models"
)

var (
	errRelativeURL = errors.New("relative URL without a base")
	errEmptyHost   = errors.New("empty host")
)

// ParseTarget validates the part of the request path that names the article.
// The URL must be absolute, and http(s) URLs must have a host.
//
// Proxies and some clients collapse "//" in paths, so "https:/example.com"
// is accepted as "https://example.com".
func ParseTarget(raw string) (*url.URL, error) {
	u, err := url.Parse(repairSchemeSlashes(raw))
	if err != nil {
		return nil, models.NewInvalidURLError(err)
	}
	if !u.IsAbs() {
		return nil, models.NewInvalidURLError(errRelativeURL)
	}
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host == "" {
		return nil, models.NewInvalidURLError(errEmptyHost)
	}
	return u, nil
}

func repairSchemeSlashes(raw string) string {
	for _, scheme := range []string{"http:", "https:"} {
		if len(raw) <= len(scheme) || !strings.EqualFold(raw[:len(scheme)], scheme) {
			continue
		}
		rest := raw[len(scheme):]
		if strings.HasPrefix(rest, "/") && !strings.HasPrefix(rest, "//") {
			return raw[:len(scheme)] + "/" + rest
		}
	}
	return raw
}

// Package fetcher performs the single outbound GET for an article URL.
package fetcher

import (
	"bytes"
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/use-agent/readable/config"
	"github.com/use-agent/readable/models"
)

// Result is a fetched document, already decoded to UTF-8 text.
type Result struct {
	Body        string
	StatusCode  int
	ContentType string
	FinalURL    string
}

// Client fetches article pages. It wraps one http.Client so connections are
// pooled across requests; it is safe for concurrent use.
type Client struct {
	client  *http.Client
	timeout time.Duration
	maxBody int64
}

// New builds a Client from the fetch configuration. It fails on an
// unsupported proxy URL, and when a proxy is combined with the TLS
// fingerprint: proxied HTTPS is tunnelled through the standard TLS stack,
// which would silently drop the fingerprint.
func New(cfg config.FetchConfig) (*Client, error) {
	return newClient(cfg, nil)
}

// newClient is New with the root CAs trusted by the fingerprinting dialer.
func newClient(cfg config.FetchConfig, roots *x509.CertPool) (*Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Proxy != "" {
		if cfg.TLSFingerprint {
			return nil, errors.New("fetcher: tls fingerprint cannot be used with a proxy")
		}
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil || (proxyURL.Scheme != "http" && proxyURL.Scheme != "https") || proxyURL.Host == "" {
			return nil, fmt.Errorf("fetcher: unsupported proxy %q", cfg.Proxy)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}
	if cfg.TLSFingerprint {
		transport.DialTLSContext = newChromeDialer(roots).DialTLSContext
		transport.ForceAttemptHTTP2 = false
	}

	maxRedirects := cfg.MaxRedirects
	if maxRedirects <= 0 {
		maxRedirects = 10
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 10 << 20
	}

	return &Client{
		client: &http.Client{
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		timeout: cfg.Timeout,
		maxBody: maxBody,
	}, nil
}

// Fetch issues one GET to target with the given User-Agent and returns the
// body as text. The response status is not checked: error pages are still
// documents.
//
// Failures are *models.PageError with code ErrCodeFetchTransport (request
// could not be made or answered) or ErrCodeFetchBodyRead (body could not be
// read or decoded).
func (c *Client) Fetch(ctx context.Context, target *url.URL, userAgent string) (*Result, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, models.NewFetchTransportError(err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, models.NewFetchTransportError(err)
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	body, err := readText(io.LimitReader(resp.Body, c.maxBody), contentType)
	if err != nil {
		return nil, models.NewFetchBodyReadError(err)
	}

	res := &Result{
		Body:        body,
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		FinalURL:    resp.Request.URL.String(),
	}
	slog.Debug("fetcher: fetched",
		"url", target.String(),
		"final_url", res.FinalURL,
		"status", res.StatusCode,
		"content_type", res.ContentType,
		"bytes", len(res.Body),
	)
	return res, nil
}

// readText reads r fully and decodes it to UTF-8 using the charset named in
// contentType, or sniffed from the document when none is given. An empty body
// is empty text. Invalid UTF-8 left after decoding becomes U+FFFD.
func readText(r io.Reader, contentType string) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", nil
	}
	decoded, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	b, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	return strings.ToValidUTF8(string(b), "\uFFFD"), nil
}

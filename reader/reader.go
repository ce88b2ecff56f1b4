// Package reader turns an article URL into readable content: it fetches the
// page once, runs readability on it and serializes the result.
package reader

import (
	"context"
	"fmt"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/use-agent/readable/cleaner"
	"github.com/use-agent/readable/fetcher"
	"github.com/use-agent/readable/format"
	"github.com/use-agent/readable/models"
)

// Fetcher retrieves a page as text.
type Fetcher interface {
	Fetch(ctx context.Context, target *url.URL, userAgent string) (*fetcher.Result, error)
}

// Cleaner extracts the article from a page and converts it to Markdown.
type Cleaner interface {
	Extract(rawHTML string, base *url.URL) (*cleaner.Article, error)
	ToMarkdown(htmlContent string, domain string) (string, error)
}

// Reader runs the fetch-and-extract pipeline. It holds no per-request state
// and is safe for concurrent use.
type Reader struct {
	fetch   Fetcher
	cleaner Cleaner
	stamp   func() string
}

// Option configures a Reader.
type Option func(*Reader)

// WithClock overrides the clock used for the retrieval timestamp.
func WithClock(now func() time.Time) Option {
	return func(r *Reader) {
		r.stamp = func() string { return format.Timestamp(now()) }
	}
}

// New creates a Reader.
func New(f Fetcher, c Cleaner, opts ...Option) *Reader {
	r := &Reader{fetch: f, cleaner: c, stamp: format.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read fetches rawTarget and extracts its article.
//
// callerAgent is the inbound User-Agent; it is forwarded when valid.
// Every failure is a *models.PageError.
func (r *Reader) Read(ctx context.Context, rawTarget, callerAgent string) (*Document, error) {
	target, err := ParseTarget(rawTarget)
	if err != nil {
		return nil, err
	}

	res, err := r.fetch.Fetch(ctx, target, format.UserAgent(callerAgent))
	if err != nil {
		pe := models.AsPageError(err)
		if pe.Code == models.ErrCodeInternal {
			pe = models.NewFetchTransportError(err)
		}
		return nil, pe
	}

	article, err := r.cleaner.Extract(res.Body, target)
	if err != nil {
		return nil, models.NewExtractionSerializeError(err)
	}

	b, err := cleaner.Serialize(article.Root)
	if err != nil {
		return nil, models.NewExtractionSerializeError(err)
	}
	if err := validUTF8(b); err != nil {
		return nil, models.NewExtractionEncodingError(err)
	}

	return &Document{
		URL:          target,
		PageTitle:    article.PageTitle,
		ArticleTitle: article.ArticleTitle,
		Content:      string(b),
		StatusCode:   res.StatusCode,
		Retrieved:    r.stamp(),
	}, nil
}

// Markdown converts the document's content to Markdown, resolving relative
// URLs against the document URL.
func (r *Reader) Markdown(doc *Document) (string, error) {
	md, err := r.cleaner.ToMarkdown(doc.Content, doc.URL.String())
	if err != nil {
		return "", models.NewExtractionSerializeError(err)
	}
	return doc.MarkdownPage(md), nil
}

func validUTF8(b []byte) error {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("invalid utf-8 sequence at byte offset %d", i)
		}
		i += size
	}
	return nil
}

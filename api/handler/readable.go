package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/readable/metrics"
	"github.com/use-agent/readable/models"
	"github.com/use-agent/readable/reader"
	"github.com/use-agent/readable/render"
)

const (
	contentTypeHTML     = "text/html; charset=utf-8"
	contentTypeMarkdown = "text/markdown; charset=utf-8"
	mimeMarkdown        = "text/markdown"
)

// Readable returns the fallback handler: everything after the leading slash
// of the request URI is the article URL.
//
// Flow:
//  1. Empty path → landing page.
//  2. Reader.Read → parse URL, fetch once, extract, serialize.
//  3. Render as HTML, or Markdown when the caller asks for text/markdown.
//
// Every failure is rendered as an HTML error page.
func Readable(rd *reader.Reader, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isRoot(c.Request) {
			c.Data(http.StatusOK, contentTypeHTML, []byte(render.Index()))
			return
		}

		target := strings.TrimPrefix(requestTarget(c.Request), "/")
		start := time.Now()

		doc, err := rd.Read(c.Request.Context(), target, c.GetHeader("User-Agent"))
		if err != nil {
			respondError(c, err, target, time.Since(start), m)
			return
		}

		if c.NegotiateFormat(gin.MIMEHTML, mimeMarkdown) == mimeMarkdown {
			md, err := rd.Markdown(doc)
			if err != nil {
				respondError(c, err, target, time.Since(start), m)
				return
			}
			observeSuccess(doc, target, time.Since(start), m)
			c.Data(http.StatusOK, contentTypeMarkdown, []byte(md))
			return
		}

		observeSuccess(doc, target, time.Since(start), m)
		c.Data(http.StatusOK, contentTypeHTML, []byte(doc.HTML()))
	}
}

func isRoot(r *http.Request) bool {
	p := r.URL.EscapedPath()
	return p == "" || p == "/"
}

// requestTarget returns the request URI exactly as the client sent it, so
// percent-escapes and the query string reach the URL parser untouched.
func requestTarget(r *http.Request) string {
	if strings.HasPrefix(r.RequestURI, "/") {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}

func observeSuccess(doc *reader.Document, target string, d time.Duration, m *metrics.Metrics) {
	slog.Info("article rendered",
		"url", target,
		"upstream_status", doc.StatusCode,
		"content_bytes", len(doc.Content),
		"duration_ms", d.Milliseconds(),
	)
	m.ObserveRead(metrics.OutcomeOK, d)
	m.ObserveContent(len(doc.Content))
}

// respondError renders a PageError with the status its code maps to.
func respondError(c *gin.Context, err error, target string, d time.Duration, m *metrics.Metrics) {
	pe := models.AsPageError(err)

	slog.Warn("article failed",
		"url", target,
		"code", pe.Code,
		"error", pe.Err,
		"duration_ms", d.Milliseconds(),
	)
	m.ObserveRead(pe.Code, d)

	page := render.Error(pe.Title, pe.Header, render.EscapeText(pe.Message))
	c.Data(pe.Status(), contentTypeHTML, []byte(page))
}

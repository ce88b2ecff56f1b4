package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/readable/api/handler"
	"github.com/use-agent/readable/config"
	"github.com/use-agent/readable/metrics"
	"github.com/use-agent/readable/reader"
	"github.com/use-agent/readable/static"
)

// NewRouter creates a configured Gin engine.
//
// Fixed routes (static assets, /healthz, /metrics) are matched first. Every
// other request falls through to handler.Readable via NoRoute, so adding a
// fixed route never changes how article URLs are matched.
//
// m may be nil, in which case /metrics is not registered.
func NewRouter(rd *reader.Reader, m *metrics.Metrics, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	// The fallback must see the path as sent; "https://x/" must not be
	// redirected to "https://x".
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(m.Middleware())

	for _, a := range static.Assets() {
		r.GET(a.Path, handler.Static(a))
	}

	r.GET("/healthz", handler.Health(startTime))
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	r.NoRoute(handler.Readable(rd, m))

	return r
}

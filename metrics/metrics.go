// Package metrics records request outcomes for the readable service.
//
// A nil *Metrics is valid and records nothing, so callers do not need to
// check whether metrics are enabled.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OutcomeOK labels a successfully rendered article.
const OutcomeOK = "ok"

// Metrics owns a private registry so tests and multiple servers do not
// collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	readsTotal    *prometheus.CounterVec
	readDuration  *prometheus.HistogramVec
	contentBytes  prometheus.Histogram
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		readsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "readable_reads_total",
				Help: "Article reads, labeled by outcome (ok or error code).",
			},
			[]string{"outcome"},
		),
		readDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "readable_read_duration_seconds",
				Help:    "Time to fetch and extract an article, labeled by outcome.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30},
			},
			[]string{"outcome"},
		),
		contentBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "readable_content_bytes",
				Help:    "Size of the extracted article HTML.",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by route and code.",
			},
			[]string{"route", "code"},
		),
		httpDurations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by route.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"route"},
		),
	}

	m.registry.MustRegister(
		m.readsTotal,
		m.readDuration,
		m.contentBytes,
		m.httpRequests,
		m.httpDurations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRead records one pipeline run.
func (m *Metrics) ObserveRead(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.readsTotal.WithLabelValues(outcome).Inc()
	m.readDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// ObserveContent records the size of an extracted article.
func (m *Metrics) ObserveContent(n int) {
	if m == nil {
		return
	}
	m.contentBytes.Observe(float64(n))
}

// Middleware records every HTTP request. Requests served by the fallback
// route are labeled "fallback" so target URLs never become label values.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "fallback"
		}
		m.httpRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDurations.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Package metrics owns the prometheus registry for a process: standard HTTP
// instrumentation plus helpers modules use to declare their own series
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"narrativedesk/internal/platform/net/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the registry and HTTP series. A nil *Collector is a valid
// no-op, so modules can take one unconditionally
type Collector struct {
	ns  string
	reg *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inflight prometheus.Gauge
}

// New builds a collector with its own registry. namespace prefixes every
// series ("narrativedesk" gives narrativedesk_http_requests_total)
func New(namespace, version, commit string) *Collector {
	ns := strings.ReplaceAll(strings.TrimSpace(namespace), "-", "_")
	c := &Collector{ns: ns, reg: prometheus.NewRegistry()}

	c.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: ns,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	c.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: ns,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	c.inflight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: ns,
		Name:      "http_inflight_requests",
		Help:      "Requests currently being served.",
	})

	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: ns,
		Name:      "build_info",
		Help:      "Build information, value is always 1.",
	}, []string{"version", "commit"})
	info.WithLabelValues(version, commit).Set(1)

	c.reg.MustRegister(
		c.requests, c.duration, c.inflight, info,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Registry exposes the underlying registry (tests gather from it)
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.reg
}

// Middleware records request count, latency and in-flight gauge keyed by the
// matched chi route pattern
func (c *Collector) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if c == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.inflight.Inc()
			defer c.inflight.Dec()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := middleware.RoutePattern(r)
			c.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			c.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

// Handler serves the registry in the prometheus exposition format
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}

// CounterVec declares and registers a namespaced counter
func (c *Collector) CounterVec(name, help string, labels ...string) *prometheus.CounterVec {
	cv := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: c.namespace(), Name: name, Help: help}, labels)
	c.register(cv)
	return cv
}

// HistogramVec declares and registers a namespaced histogram; nil buckets
// means prometheus.DefBuckets
func (c *Collector) HistogramVec(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	hv := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: c.namespace(), Name: name, Help: help, Buckets: buckets}, labels)
	c.register(hv)
	return hv
}

func (c *Collector) namespace() string {
	if c == nil {
		return "narrativedesk"
	}
	return c.ns
}

// register adds col to the registry; on a nil collector the series still work
// but are never exported
func (c *Collector) register(col prometheus.Collector) {
	if c == nil {
		return
	}
	c.reg.MustRegister(col)
}

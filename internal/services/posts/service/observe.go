package service

import (
	"time"

	"narrativedesk/internal/core/ingest"
	"narrativedesk/internal/platform/logger"
	"narrativedesk/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

type fetchMetrics struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	rows     *prometheus.CounterVec
}

func newFetchMetrics(c *metrics.Collector) fetchMetrics {
	return fetchMetrics{
		total:    c.CounterVec("fetch_total", "Topic fetches by outcome", "topic", "outcome"),
		duration: c.HistogramVec("fetch_duration_seconds", "Topic fetch latency", []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30}, "topic"),
		rows:     c.CounterVec("rows_normalized_total", "Rows normalized into posts", "topic"),
	}
}

func (m fetchMetrics) observe(topic string, took time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.total.WithLabelValues(topic, outcome).Inc()
	m.duration.WithLabelValues(topic).Observe(took.Seconds())
}

// logReporter writes normalization events at debug level
func logReporter(log *logger.Logger) ingest.ReporterFunc {
	return func(e ingest.Event) {
		log.Debug().
			Str("event", string(e.Kind)).
			Str("source", e.Source).
			Int("row", e.Row).
			Str("id", e.ID).
			Str("detail", e.Detail).
			Msg("row repaired")
	}
}

type fanout []ingest.Reporter

func (f fanout) Report(e ingest.Event) {
	for _, r := range f {
		r.Report(e)
	}
}

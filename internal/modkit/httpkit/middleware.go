package httpkit

import (
	"net/http"
	"time"

	"narrativedesk/internal/platform/config"
	"narrativedesk/internal/platform/metrics"
	"narrativedesk/internal/platform/net/middleware"
)

// StackOptions tunes the API middleware stack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	SlowLog     time.Duration
	Metrics     *metrics.Collector
}

// StackOptionsFromEnv reads CORS_ORIGINS, REQUEST_TIMEOUT and SLOW_MS under cfg (CORE_API_)
func StackOptionsFromEnv(cfg config.Conf, m *metrics.Collector) StackOptions {
	return StackOptions{
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		Timeout:     cfg.MayDuration("REQUEST_TIMEOUT", 60*time.Second),
		SlowLog:     time.Duration(cfg.MayInt("SLOW_MS", 1000)) * time.Millisecond,
		Metrics:     m,
	}
}

// CommonStack is the middleware every versioned API route runs through
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	out := middleware.Defaults(o.Timeout)
	return append(out,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		o.Metrics.Middleware(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowLog}),
	)
}

package modkit

import (
	"narrativedesk/internal/modkit/repokit"
	"narrativedesk/internal/platform/config"
	"narrativedesk/internal/platform/logger"
	"narrativedesk/internal/platform/metrics"
)

// Deps holds core dependencies passed to modules. Backends not opened stay nil
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	PG      repokit.Queryer
	CH      repokit.Queryer
	Metrics *metrics.Collector
}

// Logger returns Log, or the root logger when unset
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}

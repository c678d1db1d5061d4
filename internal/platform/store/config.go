package store

import (
	"time"

	"narrativedesk/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // default 6
	PingTimeout    time.Duration // default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
	LogSQL  bool
	Role    string
	Tag     string

	ConnectRetries int
	PingTimeout    time.Duration
}

// FromEnv reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_* under root. Only the
// backend named by backend ("pg" or "ch") is enabled
func FromEnv(root config.Conf, appName, backend string) Config {
	pgc := root.Prefix("SERVICE_PGSQL_")
	chc := root.Prefix("SERVICE_CLICKHOUSE_")

	cfg := Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:        backend == "pg",
			URL:            pgc.MayString("DBURL", ""),
			MaxConns:       int32(pgc.MayInt("MAX_CONNS", 8)),
			LogSQL:         pgc.MayBool("LOG_SQL", false),
			SlowQueryMs:    pgc.MayInt("SLOW_MS", 500),
			ConnectRetries: pgc.MayInt("CONNECT_RETRIES", 6),
			PingTimeout:    pgc.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			Enabled:        backend == "ch",
			URL:            chc.MayString("DBURL", ""),
			LogSQL:         chc.MayBool("LOG_SQL", false),
			Role:           appName,
			ConnectRetries: chc.MayInt("CONNECT_RETRIES", 6),
			PingTimeout:    chc.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
	}
	if cfg.PG.Enabled {
		pgc.Require("DBURL")
	}
	if cfg.CH.Enabled {
		chc.Require("DBURL")
	}
	return cfg
}

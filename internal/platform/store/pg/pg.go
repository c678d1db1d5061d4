// Package pg opens a pgx pool for read-only table fetches, with optional
// zerolog query tracing
package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool
type Config struct {
	URL     string
	AppName string

	MaxConns int32
	// SlowMs marks traced queries at or above this duration as slow, 0 disables
	SlowMs int
	// ReadOnly sets default_transaction_read_only on every session
	ReadOnly bool
}

// PG owns the pool
type PG struct {
	Pool *pgxpool.Pool
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg, installs tracer (may be nil) and applies mut before the pool
// is created. The pool connects lazily; callers ping to verify
func Open(ctx context.Context, cfg Config, tracer *Tracer, mut func(*pgxpool.Config)) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	pcfg.MaxConnIdleTime = 5 * time.Minute

	rp := pcfg.ConnConfig.RuntimeParams
	if cfg.AppName != "" {
		rp["application_name"] = cfg.AppName
	}
	if cfg.ReadOnly {
		rp["default_transaction_read_only"] = "on"
	}
	if tracer != nil {
		pcfg.ConnConfig.Tracer = tracer
	}
	if mut != nil {
		mut(pcfg)
	}

	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool}, nil
}

// Ping checks one connection from the pool
func (p *PG) Ping(ctx context.Context) error { return p.Pool.Ping(ctx) }

// Close closes the pool; nil safe
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}

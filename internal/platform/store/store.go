// Package store opens the upstream read backends (Postgres, ClickHouse) behind
// one small querying seam
package store

import (
	"context"
	"errors"
	"fmt"

	"narrativedesk/internal/platform/logger"
)

// Store holds the opened backends. Backends not enabled stay nil
type Store struct {
	Log *logger.Logger

	PG Querier
	CH Querier
}

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes iteration and scan over a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// Querier is the read surface repos use; both backends implement it
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open constructs a Store with the backends enabled in cfg
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: logger.Named("store")}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	if cfg.PG.Enabled {
		pgq, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		s.PG = pgq
	}
	if cfg.CH.Enabled {
		chq, err := openCH(ctx, cfg, s)
		if err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("clickhouse: %w", err)
		}
		s.CH = chq
	}
	return s, nil
}

// Ping verifies every opened backend. It lets the Store serve as a readiness check
func (s *Store) Ping(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	for name, q := range map[string]Querier{"pg": s.PG, "ch": s.CH} {
		if q == nil {
			continue
		}
		if p, ok := q.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close closes all opened backends; nil backends are ignored
func (s *Store) Close(_ context.Context) error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, q := range []Querier{s.CH, s.PG} {
		if c, ok := q.(interface{ Close() error }); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

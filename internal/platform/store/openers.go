package store

import (
	"context"
	"time"

	"narrativedesk/internal/platform/logger"
	chx "narrativedesk/internal/platform/store/ch"
	"narrativedesk/internal/platform/store/pg"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
)

// boot backoff bounds; tests shrink them
var (
	pingBackoffStart   = 150 * time.Millisecond
	pingBackoffCeiling = 2 * time.Second
)

// pingWithRetry pings until success, retries run out or ctx ends
func pingWithRetry(ctx context.Context, log *logger.Logger, backend string, retries int, timeout time.Duration, ping func(context.Context) error) error {
	if retries < 0 {
		retries = 0
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	policy := retrypolicy.NewBuilder[any]().
		WithBackoff(pingBackoffStart, pingBackoffCeiling).
		WithMaxRetries(retries).
		HandleIf(func(_ any, err error) bool { return err != nil && ctx.Err() == nil }).
		OnRetry(func(e failsafe.ExecutionEvent[any]) {
			log.Warn().Str("backend", backend).Int("attempt", e.Attempts()).Err(e.LastError()).Msg("ping failed; retrying")
		}).
		ReturnLastFailure().
		Build()

	return failsafe.With[any](policy).WithContext(ctx).Run(func() error {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return ping(pctx)
	})
}

// openPG opens the pool, pings it, then publishes the adapter
func openPG(ctx context.Context, cfg Config, s *Store) (Querier, error) {
	var tracer *pg.Tracer
	if cfg.PG.LogSQL {
		tracer = pg.NewTracer(s.Log, cfg.PG.SlowQueryMs)
	}
	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		ReadOnly: true,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}
	if err := pingWithRetry(ctx, s.Log, "pg", cfg.PG.ConnectRetries, cfg.PG.PingTimeout, p.Ping); err != nil {
		p.Close()
		return nil, err
	}
	s.Log.Info().Int32("max_conns", cfg.PG.MaxConns).Bool("log_sql", cfg.PG.LogSQL).Msg("postgres ready")
	return newPGAdapter(p), nil
}

func openCH(ctx context.Context, cfg Config, s *Store) (Querier, error) {
	c, err := chx.Open(ctx, chx.Config{URL: cfg.CH.URL, Role: cfg.CH.Role, Tag: cfg.CH.Tag})
	if err != nil {
		return nil, err
	}
	if err := pingWithRetry(ctx, s.Log, "ch", cfg.CH.ConnectRetries, cfg.CH.PingTimeout, c.Ping); err != nil {
		_ = c.Close()
		return nil, err
	}
	s.Log.Info().Bool("log_sql", cfg.CH.LogSQL).Msg("clickhouse ready")
	var log *logger.Logger
	if cfg.CH.LogSQL {
		l := s.Log.With().Str("component", "ch").Logger()
		log = &l
	}
	return newCHAdapter(c, log), nil
}

package store

import (
	"context"
	"errors"
	"time"

	"narrativedesk/internal/platform/logger"
	"narrativedesk/internal/platform/store/ch"
)

// chAdapter adapts *ch.CH to Querier. With log set, each query is logged the
// way the pg tracer does it
type chAdapter struct {
	inner *ch.CH
	log   *logger.Logger
}

var _ Querier = (*chAdapter)(nil)

func newCHAdapter(c *ch.CH, log *logger.Logger) *chAdapter {
	return &chAdapter{inner: c, log: log}
}

func (a *chAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	r, err := a.inner.Query(ctx, sql, args...)
	if a.log != nil {
		evt := a.log.Info()
		if err != nil {
			evt = a.log.Error().Err(err)
		}
		evt.Float64("elapsed_ms", float64(time.Since(start).Microseconds())/1000.0).
			Str("sql", sql).Int("args", len(args)).Msg("ch query")
	}
	if err != nil {
		return nil, err
	}
	return &chRows{r: r}, nil
}

func (a *chAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	rs, err := a.Query(ctx, sql, args...)
	return &chRow{rows: rs, err: err}
}

func (a *chAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return errors.New("ch: nil adapter")
	}
	return a.inner.Ping(ctx)
}

func (a *chAdapter) Close() error { return a.inner.Close() }

// chRows wraps ch.Rows. Scanning into *any destinations goes through
// ch.Rows.Values, since the native driver needs typed targets
type chRows struct {
	r interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
		Columns() []string
		Values() ([]any, error)
	}
}

func (r *chRows) Next() bool        { return r.r.Next() }
func (r *chRows) Err() error        { return r.r.Err() }
func (r *chRows) Close()            { _ = r.r.Close() }
func (r *chRows) Columns() []string { return r.r.Columns() }

func (r *chRows) Scan(dest ...any) error {
	if !allAny(dest) {
		return r.r.Scan(dest...)
	}
	vals, err := r.r.Values()
	if err != nil {
		return err
	}
	if len(vals) != len(dest) {
		return errors.New("ch: scan destination count mismatch")
	}
	for i, v := range vals {
		*(dest[i].(*any)) = v
	}
	return nil
}

func allAny(dest []any) bool {
	for _, d := range dest {
		if _, ok := d.(*any); !ok {
			return false
		}
	}
	return len(dest) > 0
}

// chRow is the single row view QueryRow returns
type chRow struct {
	rows Rows
	err  error
}

func (r *chRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	defer r.rows.Close()
	if !r.rows.Next() {
		if err := r.rows.Err(); err != nil {
			return err
		}
		return ErrNoRows
	}
	return r.rows.Scan(dest...)
}

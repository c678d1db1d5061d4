package pg

import (
	"context"
	"strings"
	"time"

	"narrativedesk/internal/platform/logger"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Tracer implements pgx.QueryTracer and logs every statement through zerolog.
// It logs at debug level pinned on its own logger so SQL shows up whenever
// tracing is enabled, regardless of the root level
type Tracer struct {
	log  zerolog.Logger
	slow time.Duration
	now  func() time.Time
}

var _ pgx.QueryTracer = (*Tracer)(nil)

type traceKey struct{}

type traceStart struct {
	sql  string
	args []any
	at   time.Time
}

// NewTracer returns a tracer that logs on root with component=pg. slowMs > 0
// promotes queries at or above that duration to warn
func NewTracer(root *logger.Logger, slowMs int) *Tracer {
	if root == nil {
		root = logger.Get()
	}
	return &Tracer{
		log:  root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger(),
		slow: time.Duration(slowMs) * time.Millisecond,
		now:  time.Now,
	}
}

// TraceQueryStart stashes the statement on ctx for TraceQueryEnd
func (t *Tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, traceStart{sql: data.SQL, args: data.Args, at: t.now()})
}

// TraceQueryEnd logs the statement with elapsed time and outcome
func (t *Tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	st, ok := ctx.Value(traceKey{}).(traceStart)
	if !ok {
		return
	}
	elapsed := t.now().Sub(st.at)
	slow := t.slow > 0 && elapsed >= t.slow

	evt := t.log.Info()
	switch {
	case data.Err != nil:
		evt = t.log.Error().Err(data.Err)
	case slow:
		evt = t.log.Warn()
	}
	evt.Float64("elapsed_ms", float64(elapsed.Microseconds())/1000.0).
		Bool("slow", slow).
		Str("sql", compact(st.sql)).
		Int("args", len(st.args)).
		Int64("rows", data.CommandTag.RowsAffected()).
		Msg("pg query")
}

// compact folds runs of whitespace into single spaces
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

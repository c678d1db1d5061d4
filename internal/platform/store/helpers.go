package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	perr "narrativedesk/internal/platform/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ErrNoRows is returned by QueryRow scans when the result is empty
var ErrNoRows = perr.ErrNotFound

// QuoteTable sanitizes a possibly schema qualified table name ("FM",
// "social.PTI") for interpolation into SQL. Both Postgres and ClickHouse
// accept double quoted identifiers
func QuoteTable(name string) string {
	parts := strings.Split(strings.TrimSpace(name), ".")
	return pgx.Identifier(parts).Sanitize()
}

// Maps returns all rows as []map[string]any keyed by column name. Values are
// flattened to plain Go types (see Plain)
func Maps(ctx context.Context, q Querier, sql string, args ...any) ([]map[string]any, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		m, err := scanMap(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMap(rows Rows) (map[string]any, error) {
	cols := rows.Columns()
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	m := make(map[string]any, len(cols))
	for i, c := range cols {
		m[c] = Plain(vals[i])
	}
	return m, nil
}

// Plain flattens driver specific values: nil pointers become nil, numerics
// become float64, uuids become strings, byte slices become strings
func Plain(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *time.Time:
		if x == nil {
			return nil
		}
		return *x
	case *string:
		if x == nil {
			return nil
		}
		return *x
	case []byte:
		return string(x)
	case [16]byte:
		return uuid.UUID(x).String()
	case pgtype.Numeric:
		if !x.Valid {
			return nil
		}
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case fmt.Stringer:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil
		}
		return v
	default:
		return v
	}
}

// Package ch wraps clickhouse-go for read-only topic table queries
package ch

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures the client. URL is a clickhouse:// DSN
type Config struct {
	URL  string
	Role string
	Tag  string

	DialTimeout time.Duration
	// MaxExecution caps server side execution per query, 0 leaves the server default
	MaxExecution time.Duration
}

// CH is a thin handle over a native protocol connection pool
type CH struct {
	conn driver.Conn
}

var openConn = clickhouse.Open

// Open parses the DSN and opens the pool. Like pgxpool, no round trip happens
// here; callers Ping
func Open(_ context.Context, cfg Config) (*CH, error) {
	opts, err := clickhouse.ParseDSN(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("clickhouse dsn: %w", err)
	}
	opts.ClientInfo = BuildClientInfo(cfg.Role, cfg.Tag)
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.MaxExecution > 0 {
		if opts.Settings == nil {
			opts.Settings = clickhouse.Settings{}
		}
		opts.Settings["max_execution_time"] = int(cfg.MaxExecution.Seconds())
	}
	conn, err := openConn(opts)
	if err != nil {
		return nil, err
	}
	return &CH{conn: conn}, nil
}

// Ping round trips to the server
func (c *CH) Ping(ctx context.Context) error { return c.conn.Ping(ctx) }

// Query runs sql and returns the result set
func (c *CH) Query(ctx context.Context, sql string, args ...any) (*Rows, error) {
	r, err := c.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return &Rows{r: r}, nil
}

// Close closes the pool
func (c *CH) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Rows iterates a ClickHouse result set
type Rows struct {
	r driver.Rows
}

// Next advances to the next row
func (r *Rows) Next() bool { return r.r.Next() }

// Scan copies the current row into typed destinations
func (r *Rows) Scan(dest ...any) error { return r.r.Scan(dest...) }

// Err reports the iteration error, if any
func (r *Rows) Err() error { return r.r.Err() }

// Close releases the result set
func (r *Rows) Close() error { return r.r.Close() }

// Columns lists result column names in order
func (r *Rows) Columns() []string { return r.r.Columns() }

// Values scans the current row using each column's native Go type and
// returns plain values: Nullable columns come back as nil or the pointed value
func (r *Rows) Values() ([]any, error) {
	types := r.r.ColumnTypes()
	ptrs := make([]reflect.Value, len(types))
	dest := make([]any, len(types))
	for i, ct := range types {
		ptrs[i] = reflect.New(ct.ScanType())
		dest[i] = ptrs[i].Interface()
	}
	if err := r.r.Scan(dest...); err != nil {
		return nil, err
	}
	out := make([]any, len(types))
	for i, p := range ptrs {
		out[i] = plain(p.Elem())
	}
	return out, nil
}

func plain(v reflect.Value) any {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	return v.Interface()
}

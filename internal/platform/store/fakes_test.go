package store

import (
	"context"
	"errors"
)

// fakeRows replays a fixed table through *any destinations
type fakeRows struct {
	cols   []string
	data   [][]any
	i      int
	err    error
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	if len(dest) != len(row) {
		return errors.New("dest mismatch")
	}
	for i, d := range dest {
		p, ok := d.(*any)
		if !ok {
			return errors.New("fake rows only scan into *any")
		}
		*p = row[i]
	}
	return nil
}

func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            { r.closed = true }
func (r *fakeRows) Columns() []string { return r.cols }

type fakeQuerier struct {
	rows     *fakeRows
	err      error
	lastSQL  string
	pingErr  error
	closeErr error
	closed   bool
}

func (f *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (Rows, error) {
	f.lastSQL = sql
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	rs, err := f.Query(ctx, sql, args...)
	return &chRow{rows: rs, err: err}
}

func (f *fakeQuerier) Ping(context.Context) error { return f.pingErr }
func (f *fakeQuerier) Close() error              { f.closed = true; return f.closeErr }

package store

import (
	"errors"
	"testing"
)

type fakeCHRows struct {
	fakeRows
	valuesErr error
}

func (r *fakeCHRows) Close() error { r.closed = true; return nil }
func (r *fakeCHRows) Values() ([]any, error) {
	if r.valuesErr != nil {
		return nil, r.valuesErr
	}
	return r.data[r.i-1], nil
}

func TestCHRows_ScanAnyUsesValues(t *testing.T) {
	inner := &fakeCHRows{fakeRows: fakeRows{cols: []string{"ID", "Engagements"}, data: [][]any{{"p1", uint32(7)}}}}
	rows := &chRows{r: inner}

	if !rows.Next() {
		t.Fatalf("Next = false")
	}
	got, err := scanMap(rows)
	if err != nil {
		t.Fatalf("scanMap: %v", err)
	}
	if got["ID"] != "p1" || got["Engagements"] != uint32(7) {
		t.Fatalf("row = %#v", got)
	}
	rows.Close()
	if !inner.closed {
		t.Fatalf("Close not forwarded")
	}
}

func TestCHRows_ScanErrors(t *testing.T) {
	boom := errors.New("decode")
	rows := &chRows{r: &fakeCHRows{fakeRows: fakeRows{cols: []string{"a"}, data: [][]any{{1}}}, valuesErr: boom}}
	rows.Next()
	var v any
	if err := rows.Scan(&v); !errors.Is(err, boom) {
		t.Fatalf("Values error = %v", err)
	}

	rows = &chRows{r: &fakeCHRows{fakeRows: fakeRows{cols: []string{"a", "b"}, data: [][]any{{1}}}}}
	rows.Next()
	var a, b any
	if err := rows.Scan(&a, &b); err == nil {
		t.Fatalf("expected count mismatch")
	}
}

func TestCHRow_Scan(t *testing.T) {
	boom := errors.New("q")
	if err := (&chRow{err: boom}).Scan(); !errors.Is(err, boom) {
		t.Fatalf("query error = %v", err)
	}
	if err := (&chRow{rows: &fakeRows{}}).Scan(); !errors.Is(err, ErrNoRows) {
		t.Fatalf("empty = %v", err)
	}
}

func TestAllAny(t *testing.T) {
	var a any
	var s string
	if !allAny([]any{&a}) || allAny([]any{&a, &s}) || allAny(nil) {
		t.Fatalf("allAny mismatch")
	}
}

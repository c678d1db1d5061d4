package pg

import (
	"context"
	"errors"
	"testing"

	"narrativedesk/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpen_ParseError(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "://bad"}, nil, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestOpen_NewPoolError(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, errors.New("boom")
	})
	if _, err := Open(context.Background(), Config{URL: "postgres://u:p@h:5432/db"}, nil, nil); err == nil {
		t.Fatalf("expected pool error")
	}
}

func TestOpen_AppliesConfig(t *testing.T) {
	testkit.Serial(t)

	var seen *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, c *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = c
		return &pgxpool.Pool{}, nil
	})

	tr := NewTracer(nil, 100)
	cfg := Config{URL: "postgres://u:p@h:5432/db?sslmode=disable", AppName: "narrativedesk-api", MaxConns: 7, ReadOnly: true}
	var mutCalled bool
	p, err := Open(context.Background(), cfg, tr, func(*pgxpool.Config) { mutCalled = true })
	if err != nil || p.Pool == nil {
		t.Fatalf("Open: %v", err)
	}
	if !mutCalled {
		t.Fatalf("mutator not called")
	}
	if seen.MaxConns != 7 {
		t.Fatalf("MaxConns = %d", seen.MaxConns)
	}
	rp := seen.ConnConfig.RuntimeParams
	if rp["application_name"] != "narrativedesk-api" || rp["default_transaction_read_only"] != "on" {
		t.Fatalf("runtime params = %v", rp)
	}
	if seen.ConnConfig.Tracer != tr {
		t.Fatalf("tracer not installed")
	}
}

func TestClose_NilSafe(t *testing.T) {
	var p *PG
	p.Close()
	(&PG{}).Close()
}

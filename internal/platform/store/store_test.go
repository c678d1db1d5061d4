package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"narrativedesk/internal/platform/config"
	"narrativedesk/internal/platform/logger"
	kit "narrativedesk/internal/platform/testkit"
)

func TestOpen_NothingEnabled(t *testing.T) {
	s, err := Open(context.Background(), Config{}, WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.PG != nil || s.CH != nil {
		t.Fatalf("unexpected backends %T %T", s.PG, s.CH)
	}
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("Ping with no backends = %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close = %v", err)
	}
}

func TestOpen_PGBadURL(t *testing.T) {
	_, err := Open(context.Background(), Config{PG: PGConfig{Enabled: true, URL: "://bad"}})
	if err == nil || !strings.HasPrefix(err.Error(), "postgres:") {
		t.Fatalf("err = %v", err)
	}
}

func TestOpen_CHBadURL(t *testing.T) {
	_, err := Open(context.Background(), Config{CH: CHConfig{Enabled: true, URL: "://bad"}})
	if err == nil || !strings.HasPrefix(err.Error(), "clickhouse:") {
		t.Fatalf("err = %v", err)
	}
}

func TestStore_PingAndClose(t *testing.T) {
	boom := errors.New("down")
	pgq := &fakeQuerier{pingErr: boom}
	chq := &fakeQuerier{closeErr: boom}
	s := &Store{PG: pgq, CH: chq}

	if err := s.Ping(context.Background()); !errors.Is(err, boom) || !strings.Contains(err.Error(), "pg:") {
		t.Fatalf("Ping = %v", err)
	}
	if err := s.Close(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Close = %v", err)
	}
	if !pgq.closed || !chq.closed {
		t.Fatalf("not all closed")
	}

	var nilStore *Store
	if nilStore.Ping(context.Background()) == nil {
		t.Fatalf("nil store should fail Ping")
	}
}

func TestPingWithRetry(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &pingBackoffStart, time.Millisecond)
	kit.Swap(t, &pingBackoffCeiling, 2*time.Millisecond)

	var calls int
	flaky := func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	}
	if err := pingWithRetry(context.Background(), logger.Nop(), "pg", 5, time.Second, flaky); err != nil || calls != 3 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}

	calls = 0
	down := errors.New("down")
	err := pingWithRetry(context.Background(), logger.Nop(), "ch", 2, time.Second, func(context.Context) error {
		calls++
		return down
	})
	if !errors.Is(err, down) || calls != 3 {
		t.Fatalf("exhausted: err=%v calls=%d", err, calls)
	}
}

func TestPingWithRetry_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := pingWithRetry(ctx, logger.Nop(), "pg", 10, time.Second, func(context.Context) error { return errors.New("x") })
	if err == nil {
		t.Fatalf("expected error on canceled ctx")
	}
}

func TestFromEnv(t *testing.T) {
	kit.Setenv(t, map[string]string{
		"SERVICE_PGSQL_DBURL":      "postgres://u:p@db/social",
		"SERVICE_PGSQL_MAX_CONNS":  "4",
		"SERVICE_PGSQL_LOG_SQL":    "true",
		"SERVICE_CLICKHOUSE_DBURL": "clickhouse://ch:9000/social",
	})
	cfg := FromEnv(config.New(), "narrativedesk-api", "pg")
	if !cfg.PG.Enabled || cfg.CH.Enabled {
		t.Fatalf("enabled pg=%v ch=%v", cfg.PG.Enabled, cfg.CH.Enabled)
	}
	if cfg.PG.MaxConns != 4 || !cfg.PG.LogSQL || cfg.PG.SlowQueryMs != 500 || cfg.PG.ConnectRetries != 6 {
		t.Fatalf("pg = %+v", cfg.PG)
	}
	if cfg.CH.URL != "clickhouse://ch:9000/social" || cfg.CH.Role != "narrativedesk-api" {
		t.Fatalf("ch = %+v", cfg.CH)
	}

	t.Setenv("SERVICE_CLICKHOUSE_DBURL", "")
	kit.MustPanic(t, func() { _ = FromEnv(config.New(), "x", "ch") })
}

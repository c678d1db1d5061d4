//go:build integration_ch

package ch

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startClickHouse(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "clickhouse/clickhouse-server:24.8-alpine",
			ExposedPorts: []string{"9000/tcp"},
			Env: map[string]string{
				"CLICKHOUSE_USER":     "reader",
				"CLICKHOUSE_PASSWORD": "reader",
				"CLICKHOUSE_DB":       "social",
			},
			WaitingFor: wait.ForListeningPort("9000/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start clickhouse: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := c.MappedPort(ctx, "9000/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	return fmt.Sprintf("clickhouse://reader:reader@%s:%s/social", host, port.Port())
}

func TestQueryValues_Integration(t *testing.T) {
	dsn := startClickHouse(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	c, err := Open(ctx, Config{URL: dsn, Role: "test"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer c.Close()

	deadline := time.Now().Add(30 * time.Second)
	for {
		if err = c.Ping(ctx); err == nil || time.Now().After(deadline) {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("ping: %v", err)
	}

	if err := c.conn.Exec(ctx, `CREATE TABLE PTI (ID String, Handle Nullable(String), Engagements UInt32, Date Date) ENGINE = Memory`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := c.conn.Exec(ctx, `INSERT INTO PTI VALUES ('p1', NULL, 12, '2024-01-05'), ('p2', '@b', 4, '2024-01-06')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := c.Query(ctx, "SELECT * FROM PTI ORDER BY ID")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()

	if cols := rows.Columns(); len(cols) != 4 || cols[1] != "Handle" {
		t.Fatalf("columns = %v", cols)
	}
	var got [][]any
	for rows.Next() {
		v, err := rows.Values()
		if err != nil {
			t.Fatalf("values: %v", err)
		}
		got = append(got, v)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(got) != 2 || got[0][1] != nil || got[1][1] != "@b" || got[0][2] != uint32(12) {
		t.Fatalf("rows = %#v", got)
	}
	if d, ok := got[0][3].(time.Time); !ok || d.Format("2006-01-02") != "2024-01-05" {
		t.Fatalf("date = %#v", got[0][3])
	}
}

package pg

import (
	"context"
	"testing"
)

// withTestDB opens a PG client for dsn and closes it on cleanup
func withTestDB(t *testing.T, dsn string, fn func(p *PG)) {
	t.Helper()
	client, err := Open(context.Background(), Config{URL: dsn, AppName: "narrativedesk-pg-test"}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(client.Close)
	fn(client)
}

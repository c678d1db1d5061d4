package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"narrativedesk/internal/platform/config"
	"narrativedesk/internal/platform/logger"
	"narrativedesk/internal/platform/metrics"
	phttp "narrativedesk/internal/platform/net/http"
	"narrativedesk/internal/platform/store"

	"github.com/go-chi/chi/v5"
)

type emptyRows struct{}

func (emptyRows) Next() bool        { return false }
func (emptyRows) Scan(...any) error { return nil }
func (emptyRows) Err() error        { return nil }
func (emptyRows) Close()            {}
func (emptyRows) Columns() []string { return nil }

type emptyQ struct{}

func (emptyQ) Query(context.Context, string, ...any) (store.Rows, error) { return emptyRows{}, nil }
func (emptyQ) QueryRow(context.Context, string, ...any) store.Row        { return nil }

func TestMount(t *testing.T) {
	t.Setenv("A_CORE_POSTS_TOPICS", "topic1=FM")
	root := config.New().Prefix("A_")

	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, Options{
		Config:        root.Prefix("CORE_API_"),
		Root:          root,
		Store:         &store.Store{PG: emptyQ{}},
		Logger:        logger.Nop(),
		Metrics:       metrics.New("narrativedesk_test", "dev", "none"),
		EnableSwagger: true,
		EnableMetrics: true,
	})

	cases := []struct {
		method, path, body string
		code               int
		contains           string
	}{
		{http.MethodGet, "/api/v1/meta/health", "", 200, `"service":"narrativedesk-api"`},
		{http.MethodGet, "/api/v1/meta/ready", "", 200, `"status":"ok"`},
		{http.MethodGet, "/api/v1/posts/topics", "", 200, `"source":"FM"`},
		{http.MethodPost, "/api/v1/posts/query", `{"topic":"topic1"}`, 200, `"loaded":0`},
		{http.MethodGet, "/api/v1/posts/export.csv?topic=topic1", "", 200, "id,accountName,handle"},
		{http.MethodGet, "/api/docs/doc.json", "", 200, `"/posts/query"`},
		{http.MethodGet, "/metrics", "", 200, "narrativedesk_test_"},
		{http.MethodGet, "/debug/pprof/", "", 404, ""},
	}
	for _, c := range cases {
		var req *http.Request
		if c.body != "" {
			req = httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(c.method, c.path, nil)
		}
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, req)
		if rr.Code != c.code || !strings.Contains(rr.Body.String(), c.contains) {
			t.Fatalf("%s %s = %d %s", c.method, c.path, rr.Code, rr.Body.String())
		}
	}
}

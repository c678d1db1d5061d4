package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "narrativedesk/internal/platform/errors"
	pnet "narrativedesk/internal/platform/net"
	phttp "narrativedesk/internal/platform/net/http"
	"narrativedesk/internal/platform/net/middleware"
	kit "narrativedesk/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestRequestLogger_PropagatesID(t *testing.T) {
	var seen string
	h := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}), middleware.RequestID(), middleware.RequestLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if seen != "req-42" {
		t.Fatalf("request id in handler = %q", seen)
	}
	if rr.Header().Get("X-Request-ID") != "req-42" {
		t.Fatalf("response header = %q", rr.Header().Get("X-Request-ID"))
	}
}

func TestRequestLogger_NoID(t *testing.T) {
	rr := httptest.NewRecorder()
	chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), middleware.RequestLogger()).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Header().Get("X-Request-ID") != "" {
		t.Fatalf("unexpected header without id")
	}
}

func TestRecoverJSON(t *testing.T) {
	h := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }),
		middleware.RequestID(), middleware.RequestLogger(), middleware.RecoverJSON)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "p-1")
	rr := httptest.NewRecorder()
	kit.MustNotPanic(t, func() { h.ServeHTTP(rr, req) })

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Code != perr.ErrorCodePanic || env.RequestID != "p-1" || env.Error != "internal error" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestRecoverJSON_AbortHandler(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	kit.MustPanic(t, func() { h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)) })
}

func TestCORS_Preflight(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://desk.example"}}))
	r.Post("/q", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodOptions, "/q", nil)
	req.Header.Set("Origin", "https://desk.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://desk.example" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestDefaults(t *testing.T) {
	mws := middleware.Defaults(0)
	if len(mws) != 7 {
		t.Fatalf("Defaults len = %d", len(mws))
	}
	h := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		phttp.RespondOK(w, r, "ok")
	}), mws...)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK || rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("status = %d header = %q", rr.Code, rr.Header().Get("X-Request-ID"))
	}
}

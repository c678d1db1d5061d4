package http

import (
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "narrativedesk/internal/platform/errors"
)

type echoIn struct {
	Topic string `json:"topic" validate:"required"`
}

type echoQuery struct {
	Topic string `query:"topic" validate:"required"`
}

func TestJSONHandler(t *testing.T) {
	h := JSONHandler(func(r *stdhttp.Request, in echoIn) (any, error) {
		if in.Topic == "explode" {
			return nil, perr.Unavailablef("query failed")
		}
		return map[string]string{"topic": in.Topic}, nil
	})
	cases := []struct {
		body string
		want int
	}{
		{`{"topic":"topic1"}`, 200},
		{`{}`, 400},
		{`nope`, 400},
		{`{"topic":"explode"}`, 503},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		h(rr, httptest.NewRequest(stdhttp.MethodPost, "/", strings.NewReader(tc.body)))
		if rr.Code != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.body, rr.Code, tc.want)
		}
	}
}

func TestQueryHandler(t *testing.T) {
	h := QueryHandler(func(r *stdhttp.Request, in echoQuery) (any, error) { return in.Topic, nil })

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(stdhttp.MethodGet, "/?topic=topic2", nil))
	if env := decode(t, rr); rr.Code != 200 || env.Data != "topic2" {
		t.Fatalf("status = %d data = %v", rr.Code, env.Data)
	}

	rr = httptest.NewRecorder()
	h(rr, httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	if env := decode(t, rr); rr.Code != 400 || env.Field != "topic" {
		t.Fatalf("status = %d env = %+v", rr.Code, env)
	}
}

func TestJSONHandlerNoBody(t *testing.T) {
	h := JSONHandlerNoBody(func(r *stdhttp.Request) (any, error) { return NoContent(), nil })
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	if rr.Code != stdhttp.StatusNoContent {
		t.Fatalf("Response passthrough status = %d", rr.Code)
	}

	h = JSONHandlerNoBody(func(r *stdhttp.Request) (any, error) { return nil, errors.New("plain") })
	rr = httptest.NewRecorder()
	h(rr, httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	if rr.Code != 500 {
		t.Fatalf("foreign error status = %d", rr.Code)
	}
}

package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"yamlgate/internal/platform/config"
	perr "yamlgate/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

type pushBody struct {
	Repository string `json:"repository" validate:"required,repo"`
}

func newRouter() (*chi.Mux, Router) {
	m := chi.NewRouter()
	return m, AdaptChi(m)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestRouter_RouteGroupUse(t *testing.T) {
	t.Parallel()

	m, r := newRouter()
	var order []string
	tag := func(s string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
				order = append(order, s)
				next.ServeHTTP(w, rq)
			})
		}
	}

	r.Route("/api/v1", func(api Router) {
		api.Use(tag("api"))
		api.Group(func(g Router) {
			g.Use(tag("group"))
			g.Post("/push", Call(func(*http.Request) (any, error) { return "ok", nil }))
		})
		api.Get("/health", Call(func(*http.Request) (any, error) { return "up", nil }))
	})

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/push", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Join(order, ",") != "api,group" {
		t.Fatalf("middleware order = %v", order)
	}

	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/health", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("wrong method status = %d", rec.Code)
	}
	if r.Mux() == nil {
		t.Fatal("Mux should not be nil")
	}
}

func TestJSONHandler(t *testing.T) {
	t.Parallel()

	h := JSONHandler(func(_ *http.Request, in pushBody) (any, error) {
		if in.Repository == "acme/locked" {
			return nil, perr.Unavailablef("gate busy")
		}
		if in.Repository == "acme/new" {
			return Response{Status: http.StatusCreated, Body: in}, nil
		}
		return map[string]string{"repo": in.Repository}, nil
	})

	cases := []struct {
		name   string
		body   string
		status int
		code   perr.ErrorCode
	}{
		{"ok", `{"repository":"acme/app"}`, http.StatusOK, 0},
		{"custom status", `{"repository":"acme/new"}`, http.StatusCreated, 0},
		{"service error", `{"repository":"acme/locked"}`, http.StatusServiceUnavailable, perr.ErrorCodeUnavailable},
		{"bad repo", `{"repository":"acme"}`, http.StatusBadRequest, perr.ErrorCodeValidation},
		{"unknown field", `{"repository":"acme/app","x":1}`, http.StatusBadRequest, perr.ErrorCodeJSON},
		{"empty", ``, http.StatusBadRequest, perr.ErrorCodeJSON},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body)))
			if rec.Code != tc.status {
				t.Fatalf("status = %d want %d body %s", rec.Code, tc.status, rec.Body.String())
			}
			env := decode(t, rec)
			if env.Code != tc.code {
				t.Fatalf("code = %v want %v", env.Code, tc.code)
			}
		})
	}
}

func TestResponse_NoContentAndHeaders(t *testing.T) {
	t.Parallel()

	h := Handle(func(*http.Request) Response {
		return Response{Status: http.StatusNoContent, Header: http.Header{"X-Gate": {"1"}}}
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("status = %d body = %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Gate") != "1" {
		t.Fatal("header not copied")
	}
}

func TestMountProfiler(t *testing.T) {
	t.Parallel()

	m, r := newRouter()
	MountProfiler(r, "/debug", false)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler status = %d", rec.Code)
	}

	m, r = newRouter()
	MountProfiler(r, "/debug", true)
	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("profiler status = %d", rec.Code)
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	t.Setenv("HTTP_SHUTDOWN_GRACE", "1s")
	s := NewServer(config.New().Prefix("HTTP_"))
	if s.Addr() != ":4000" {
		t.Fatalf("default addr = %q", s.Addr())
	}
	s.Router().Get("/ping", Call(func(*http.Request) (any, error) { return "pong", nil }))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

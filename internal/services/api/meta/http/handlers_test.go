package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "yamlgate/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func get(t *testing.T, d Deps, path string, out any) {
	t.Helper()
	m := chi.NewMux()
	Register(phttp.AdaptChi(m), d)

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("%s status = %d", path, rec.Code)
	}
	env := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatal(err)
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		pg     any
		status string
		probe  string
	}{
		{"no audit db", nil, "ok", "skipped"},
		{"up", pinger{}, "ok", "ok"},
		{"down", pinger{err: errors.New("refused")}, "fail", "fail"},
		{"not a pinger", struct{}{}, "degraded", "unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got ReadyResponse
			get(t, Deps{PG: tc.pg}, "/ready", &got)
			if got.Status != tc.status || len(got.Probes) != 1 || got.Probes[0].Status != tc.probe {
				t.Fatalf("ready = %+v", got)
			}
		})
	}
}

func TestGateAndService(t *testing.T) {
	t.Parallel()

	d := Deps{ServiceName: "yamlgate-api", StartedAt: time.Now().Add(-time.Minute), Grammars: map[string]string{"yml": "YAML"}}

	var g GateResponse
	get(t, d, "/gate", &g)
	if g.Grammars["yml"] != "YAML" || g.Build.Service != "yamlgate" {
		t.Fatalf("gate = %+v", g)
	}

	var s ServiceResponse
	get(t, d, "/service", &s)
	if s.Name != "yamlgate-api" || s.Uptime < 59 {
		t.Fatalf("service = %+v", s)
	}

	var h HealthResponse
	get(t, d, "/health", &h)
	if !h.OK {
		t.Fatalf("health = %+v", h)
	}
}

package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"yamlgate/internal/modkit/httpkit"
	phttp "yamlgate/internal/platform/net/http"
	"yamlgate/internal/platform/net/middleware"
	"yamlgate/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

type gatePorts struct{ Grammars map[string]string }

type stub struct{ ports any }

func (s stub) Name() string                 { return "stub" }
func (s stub) MountRoutes(r httpkit.Router) {}
func (s stub) Ports() any                   { return s.ports }

func TestBuild(t *testing.T) {
	t.Parallel()

	mw := []middleware.Middleware{func(h http.Handler) http.Handler { return h }}
	b := Build(
		WithName("gatekeeper"),
		WithPrefix("gate/"),
		WithPrefix("/gate"),
		WithMiddlewares(mw...),
		WithPorts(gatePorts{Grammars: map[string]string{"yaml": "YAML"}}),
	)
	if b.Name != "gatekeeper" || b.Prefix != "/gate" || len(b.Mw) != 1 {
		t.Fatalf("built = %+v", b)
	}
	mw[0] = nil
	if b.Mw[0] == nil {
		t.Fatal("Build should copy the middleware slice")
	}
	if p, ok := b.Ports.(gatePorts); !ok || p.Grammars["yaml"] != "YAML" {
		t.Fatalf("ports = %#v", b.Ports)
	}
}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	m := stub{ports: gatePorts{Grammars: map[string]string{"yml": "YAML"}}}
	if p := MustPortsOf[gatePorts](m); p.Grammars["yml"] != "YAML" {
		t.Fatalf("ports = %+v", p)
	}
	if _, ok := PortsOf[string](m); ok {
		t.Fatal("wrong port type should not match")
	}
	testkit.MustPanic(t, func() { MustPortsOf[gatePorts](stub{}) })
}

func TestMount(t *testing.T) {
	t.Parallel()

	var hits int
	counting := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			next.ServeHTTP(w, r)
		})
	}
	m := chi.NewMux()
	b := Build(WithPrefix("meta"), WithMiddlewares(counting))
	Mount(phttp.AdaptChi(m), b, func(r httpkit.Router) {
		httpkit.Get(r, "/health", func(*http.Request) (any, error) { return "ok", nil })
	})

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta/health", nil))
	if rec.Code != http.StatusOK || hits != 1 {
		t.Fatalf("status = %d hits = %d", rec.Code, hits)
	}
}

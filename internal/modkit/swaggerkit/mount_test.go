package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "yamlgate/internal/platform/net/http"
	"yamlgate/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestMount(t *testing.T) {
	t.Parallel()

	off := chi.NewMux()
	Mount(phttp.AdaptChi(off), false)
	rec := httptest.NewRecorder()
	off.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled docs status = %d", rec.Code)
	}

	on := chi.NewMux()
	Mount(phttp.AdaptChi(on), true)

	rec = httptest.NewRecorder()
	on.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	on.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("doc.json status = %d", rec.Code)
	}
	testkit.MustContain(t, rec.Body.String(), `"openapi":"3.0.3"`)
}

func TestDocJSON_Normalized(t *testing.T) {
	t.Setenv("CORE_API_DOCS_TITLE_SUFFIX", "(staging)")

	rec := httptest.NewRecorder()
	serveDocJSON()(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	if title := child(spec, "info")["title"]; title != "yamlgate API (staging)" {
		t.Fatalf("title = %v", title)
	}
	if _, ok := child(child(spec, "components"), "schemas")["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse schema missing")
	}
	push := child(child(child(spec, "paths"), "/gate/push"), "post")
	if _, ok := child(push, "responses")["500"]; !ok {
		t.Fatalf("default 500 response missing on push: %v", push["responses"])
	}
}

func TestNormalize_BadDoc(t *testing.T) {
	testkit.Swap(t, &docReader, func() string { return "{" })

	rec := httptest.NewRecorder()
	serveDocJSON()(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

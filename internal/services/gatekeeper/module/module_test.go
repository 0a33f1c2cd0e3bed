package module_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yamlgate/internal/core/gate"
	"yamlgate/internal/modkit"
	"yamlgate/internal/platform/config"
	perr "yamlgate/internal/platform/errors"
	phttp "yamlgate/internal/platform/net/http"
	"yamlgate/internal/platform/testkit"
	"yamlgate/internal/services/gatekeeper/domain"
	"yamlgate/internal/services/gatekeeper/module"

	"github.com/go-chi/chi/v5"
)

type host struct {
	docs     map[string]string
	declined int
}

func (h *host) Changes(_ context.Context, _ gate.RepoRef, _, _ gate.Revision) gate.Changes {
	var cs []gate.Change
	for p := range h.docs {
		cs = append(cs, gate.Change{Path: p, Kind: gate.KindModified})
	}
	return gate.SliceChanges(cs)
}

func (h *host) Fetch(_ context.Context, _ gate.RepoRef, _ gate.Revision, path string) (io.ReadCloser, error) {
	doc, ok := h.docs[path]
	if !ok {
		return nil, perr.NotFoundf("%s", path)
	}
	return io.NopCloser(strings.NewReader(doc)), nil
}

func (h *host) Decline(context.Context, gate.RepoRef, int, string) error {
	h.declined++
	return nil
}

func mount(t *testing.T, h *host, token string) http.Handler {
	t.Helper()
	m := module.New(modkit.Deps{Cfg: config.New()}, module.Options{
		HookToken: token,
		Source:    h,
		Fetcher:   h,
		Decliner:  h,
	})
	r := phttp.AdaptChi(chi.NewMux())
	m.MountRoutes(r)
	return r.Mux()
}

func do(t *testing.T, mux http.Handler, path, token, body string) (int, phttp.Envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal %q: %v", rec.Body.String(), err)
	}
	return rec.Code, env
}

func decision(t *testing.T, env phttp.Envelope) domain.Decision {
	t.Helper()
	b, _ := json.Marshal(env.Data)
	var d domain.Decision
	if err := json.Unmarshal(b, &d); err != nil {
		t.Fatalf("decision: %v", err)
	}
	return d
}

const pushBody = `{"repository":"acme/app","updates":[{"ref":"refs/heads/main","from":"a1","to":"b2"}]}`

func TestPush_OverHTTP(t *testing.T) {
	mux := mount(t, &host{docs: map[string]string{"values.yaml": "a:\n  b\n    c: true\n"}}, "")

	code, env := do(t, mux, "/gate/push", "", pushBody)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for a decision", code)
	}
	d := decision(t, env)
	if d.Allowed || d.Path != "values.yaml" {
		t.Fatalf("want rejection of values.yaml, got %+v", d)
	}
	testkit.MustContain(t, d.Message, "Invalid YAML content detected when reading file values.yaml: ")
}

func TestPush_ValidationErrors(t *testing.T) {
	mux := mount(t, &host{}, "")

	code, _ := do(t, mux, "/gate/push", "", `{"repository":"acme/app","updates":[]}`)
	if code != http.StatusBadRequest && code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want a client error", code)
	}
	code, _ = do(t, mux, "/gate/push", "", `{"repository":"acme/app","updates":[{"ref":"x","from":"a"}]}`)
	if code < 400 || code >= 500 {
		t.Fatalf("status = %d, want a client error for missing to", code)
	}
	code, env := do(t, mux, "/gate/push", "", `{"repository":"acme","updates":[{"ref":"x","from":"a","to":"b"}]}`)
	if code != http.StatusBadRequest || env.Field != "PushInput.repository" {
		t.Fatalf("status = %d field = %q, want 400 on repository", code, env.Field)
	}
}

func TestHookToken(t *testing.T) {
	mux := mount(t, &host{docs: map[string]string{"values.yaml": "a: 1\n"}}, "s3cret")

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "nope", http.StatusUnauthorized},
		{"right", "s3cret", http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := do(t, mux, "/gate/push", tc.token, pushBody)
			if code != tc.want {
				t.Fatalf("status = %d, want %d", code, tc.want)
			}
		})
	}
}

func TestMerge_OverHTTPDeclines(t *testing.T) {
	h := &host{docs: map[string]string{"values.yml": "a:\n  b\n    c: true\n"}}
	mux := mount(t, h, "")

	body := `{"repository":"acme/app","pull_request":{"number":4,"version":1,"from_commit":"f1","to_commit":"t1"}}`
	code, env := do(t, mux, "/gate/merge", "", body)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	d := decision(t, env)
	if d.Allowed || !d.Declined || h.declined != 1 {
		t.Fatalf("want declined veto, got %+v declined=%d", d, h.declined)
	}
	testkit.MustContain(t, d.Comment, "\n```\n")
}

func TestValidateAndDecisions(t *testing.T) {
	mux := mount(t, &host{}, "")

	code, env := do(t, mux, "/gate/validate", "", `{"files":[{"path":"a.yaml","content":"a:\n  b: 1\n"}]}`)
	if code != http.StatusOK || !decision(t, env).Allowed {
		t.Fatalf("want accepted, got %d %+v", code, env)
	}

	code, _ = do(t, mux, "/gate/decisions", "", `{"limit":10}`)
	if code != http.StatusOK {
		t.Fatalf("decisions status = %d", code)
	}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("GATE_EXTENSIONS", "yaml,json")
	t.Setenv("GATE_MAX_FILE_BYTES", "1024")
	t.Setenv("GATE_DECLINE_ON_REJECT", "false")
	t.Setenv("GATE_GH_TOKENS", "a,b")

	o := module.FromConfig(config.New())
	if strings.Join(o.Extensions, ",") != "yaml,json" || o.MaxFileBytes != 1024 || o.DeclineOnReject {
		t.Fatalf("unexpected options %+v", o)
	}
	if o.GitHub.TokensCSV != "a,b" || o.GitHub.UserAgent != "yamlgate" {
		t.Fatalf("unexpected github options %+v", o.GitHub)
	}
}

func TestNew_PanicsOnUnknownExtension(t *testing.T) {
	testkit.MustPanic(t, func() {
		module.New(modkit.Deps{Cfg: config.New()}, module.Options{Extensions: []string{"ini"}, Source: &host{}, Fetcher: &host{}, Decliner: &host{}})
	})
}

func TestPorts_ExposeGrammars(t *testing.T) {
	m := module.New(modkit.Deps{Cfg: config.New()}, module.Options{Source: &host{}, Fetcher: &host{}, Decliner: &host{}})
	p := modkit.MustPortsOf[module.Ports](m)
	if p.Gate == nil || p.Grammars["yml"] != "YAML" || m.Name() != "gatekeeper" {
		t.Fatalf("ports = %+v name = %q", p, m.Name())
	}
}

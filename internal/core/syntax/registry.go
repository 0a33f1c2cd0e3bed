package syntax

import (
	"slices"
	"strings"

	"yamlgate/internal/core/gate"
	perr "yamlgate/internal/platform/errors"
)

// Registry picks a grammar by file extension and implements gate.Checker
// build it once and share it, it is read only after construction
type Registry struct {
	byExt map[string]Grammar
}

// known maps configurable extensions to grammars
var known = map[string]Grammar{
	"yaml": YAML{},
	"yml":  YAML{},
	"json": JSON{},
	"toml": TOML{},
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry { return &Registry{byExt: map[string]Grammar{}} }

// Register binds g to the given extensions
func (r *Registry) Register(g Grammar, exts ...string) *Registry {
	for _, e := range exts {
		r.byExt[normExt(e)] = g
	}
	return r
}

// Default checks yaml and yml files
func Default() *Registry {
	return NewRegistry().Register(YAML{}, "yaml", "yml")
}

// For builds a registry for configured extensions
// an extension with no grammar is a configuration error
func For(exts []string) (*Registry, error) {
	r := NewRegistry()
	for _, e := range exts {
		e = normExt(e)
		if e == "" {
			continue
		}
		g, ok := known[e]
		if !ok {
			return nil, perr.InvalidArgf("no grammar for extension %q", e)
		}
		r.Register(g, e)
	}
	if len(r.byExt) == 0 {
		return nil, perr.InvalidArgf("no extensions configured")
	}
	return r, nil
}

// Check implements gate.Checker
func (r *Registry) Check(path, content string) error {
	g, ok := r.byExt[gate.Extension(path)]
	if !ok {
		return perr.InvalidArgf("no grammar for %s", path)
	}
	return g.Check(content)
}

// GrammarOf returns the grammar name for path or ""
func (r *Registry) GrammarOf(path string) string {
	if g, ok := r.byExt[gate.Extension(path)]; ok {
		return g.Name()
	}
	return ""
}

// Extensions returns the registered extensions sorted
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.byExt))
	for e := range r.byExt {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// Grammars maps each registered extension to its grammar name
func (r *Registry) Grammars() map[string]string {
	out := make(map[string]string, len(r.byExt))
	for e, g := range r.byExt {
		out[e] = g.Name()
	}
	return out
}

// Policy returns a gate policy that selects exactly the registered extensions
func (r *Registry) Policy() gate.Policy { return gate.NewPolicy(r.Extensions()) }

func normExt(e string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
}

// Package module mounts the meta endpoints
package module

import (
	"time"

	modkit "yamlgate/internal/modkit"
	"yamlgate/internal/modkit/httpkit"

	metahttp "yamlgate/internal/services/api/meta/http"
)

// Ports are the cross module inputs meta reads
type Ports struct {
	Grammars map[string]string
}

// Module serves health, readiness and build info
type Module struct {
	built modkit.Built
	deps  metahttp.Deps
}

// New builds the meta module, pass the gate grammars with modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)
	d := metahttp.Deps{ServiceName: "yamlgate-api", StartedAt: time.Now()}
	if deps.PG != nil {
		d.PG = deps.PG
	}
	if p, ok := b.Ports.(Ports); ok {
		d.Grammars = p.Grammars
	}
	return &Module{built: b, deps: d}
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.built.Name }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	modkit.Mount(r, m.built, func(sub httpkit.Router) { metahttp.Register(sub, m.deps) })
}

// Ports implements modkit.Module, meta exports nothing
func (m *Module) Ports() any { return nil }

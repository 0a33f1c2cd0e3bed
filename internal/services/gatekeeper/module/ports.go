package module

import (
	gatesvc "yamlgate/internal/services/gatekeeper/service"
)

// Ports is what the gatekeeper module exposes to other modules and binaries
type Ports struct {
	Gate gatesvc.Service

	// Grammars maps checked extensions to grammar names
	Grammars map[string]string
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Package modkit wires api modules, each mounts its routes under a prefix and may expose ports
package modkit

import (
	"fmt"

	"yamlgate/internal/modkit/httpkit"
	"yamlgate/internal/modkit/repokit"
	"yamlgate/internal/platform/config"
	"yamlgate/internal/platform/logger"
)

// Deps are shared by every module, zero values are valid and PG may be nil
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}

// Module is an api module
type Module interface {
	Name() string
	MountRoutes(r httpkit.Router)
	// Ports is the module's exported port set, or nil
	Ports() any
}

// PortsOf returns m's ports as T
func PortsOf[T any](m Module) (T, bool) {
	p, ok := m.Ports().(T)
	return p, ok
}

// MustPortsOf is PortsOf that panics when m does not export T
func MustPortsOf[T any](m Module) T {
	p, ok := PortsOf[T](m)
	if !ok {
		var zero T
		panic(fmt.Sprintf("modkit: module %s does not export %T", m.Name(), zero))
	}
	return p
}

// Mount routes b.Prefix behind b.Mw and hands the subrouter to register
func Mount(r httpkit.Router, b Built, register func(httpkit.Router)) {
	r.Route(b.Prefix, func(sub httpkit.Router) {
		sub.Use(b.Mw...)
		register(sub)
	})
}

package modkit

import (
	"strings"

	"yamlgate/internal/platform/net/middleware"
)

// Option configures a module build
type Option func(*Built)

// Built is the resolved module configuration
type Built struct {
	Name   string
	Prefix string
	Mw     []middleware.Middleware
	Ports  any
}

// WithName names the module in logs
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the route prefix, a missing leading slash is added
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = "/" + strings.Trim(prefix, "/") }
}

// WithMiddlewares appends module scoped middleware
func WithMiddlewares(mw ...middleware.Middleware) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands another module's ports to the module being built
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// Build applies opts in order, later options win
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.Mw = append([]middleware.Middleware(nil), b.Mw...)
	return b
}

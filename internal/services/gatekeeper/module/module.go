// Package module wires the gatekeeper into the API using modkit
package module

import (
	"context"
	"crypto/subtle"

	"yamlgate/internal/adapters/vcs/github"
	"yamlgate/internal/core/syntax"
	modkit "yamlgate/internal/modkit"
	"yamlgate/internal/modkit/httpkit"
	"yamlgate/internal/modkit/repokit"
	perr "yamlgate/internal/platform/errors"
	"yamlgate/internal/platform/net/middleware"
	"yamlgate/internal/services/gatekeeper/domain"
	gatehttp "yamlgate/internal/services/gatekeeper/http"
	gaterepo "yamlgate/internal/services/gatekeeper/repo"
	gatesvc "yamlgate/internal/services/gatekeeper/service"
)

// Module is the gatekeeper api module
type Module struct {
	built modkit.Built
	ports Ports
	auth  middleware.AuthPort
	svc   gatesvc.Service
}

// New constructs the gatekeeper module
// options not set in overrides come from GATE_ config, an unknown extension panics
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("gatekeeper"), modkit.WithPrefix("/gate")}, opts...)...)
	o := merge(FromConfig(deps.Cfg), overrides)

	reg, err := syntax.For(o.Extensions)
	if err != nil {
		panic(err)
	}

	if o.Source == nil || o.Fetcher == nil || o.Decliner == nil {
		gh := github.NewSource(github.NewClient(o.GitHub))
		if o.Source == nil {
			o.Source = gh
		}
		if o.Fetcher == nil {
			o.Fetcher = gh
		}
		if o.Decliner == nil {
			o.Decliner = gh
		}
	}

	var audit domain.AuditPort
	if deps.PG != nil {
		audit = gatesvc.NewAudit(deps.PG, gaterepo.NewPG())
	}

	log := deps.Log.With().Str("module", b.Name).Logger()
	svc := gatesvc.New(gatesvc.Options{
		Source:          o.Source,
		Fetcher:         o.Fetcher,
		Checker:         reg,
		Decliner:        o.Decliner,
		Audit:           audit,
		MaxBytes:        o.MaxFileBytes,
		DeclineOnReject: o.DeclineOnReject,
		Log:             &log,
	})

	return &Module{
		built: b,
		svc:   svc,
		auth:  hookAuth(o.HookToken),
		ports: Ports{Gate: svc, Grammars: reg.Grammars()},
	}
}

// merge applies non zero overrides on top of base
func merge(base, o Options) Options {
	if len(o.Extensions) > 0 {
		base.Extensions = o.Extensions
	}
	if o.MaxFileBytes != 0 {
		base.MaxFileBytes = o.MaxFileBytes
	}
	if o.HookToken != "" {
		base.HookToken = o.HookToken
	}
	if o.GitHub.BaseURL != "" {
		base.GitHub = o.GitHub
	}
	base.Source, base.Fetcher, base.Decliner = o.Source, o.Fetcher, o.Decliner
	return base
}

// hookAuth returns nil when no token is configured so the hooks stay open
func hookAuth(token string) middleware.AuthPort {
	if token == "" {
		return nil
	}
	return httpkit.NewPortFunc(func(got string) (string, error) {
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			return "", perr.Unauthorizedf("invalid hook token")
		}
		return "hook", nil
	})
}

// EnsureSchema creates the audit table in one transaction when it does not exist
func EnsureSchema(ctx context.Context, db repokit.TxRunner) error {
	return repokit.WithTx(ctx, db, gaterepo.NewPG(), func(r gaterepo.Repo) error {
		return r.EnsureSchema(ctx)
	})
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.built.Name }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	modkit.Mount(r, m.built, func(sub httpkit.Router) {
		gatehttp.Register(sub, m.svc, m.auth)
	})
}

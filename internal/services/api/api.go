// Package api mounts the http api modules
package api

import (
	"time"

	"yamlgate/internal/platform/config"
	"yamlgate/internal/platform/logger"
	phttp "yamlgate/internal/platform/net/http"
	"yamlgate/internal/platform/store"

	"yamlgate/internal/modkit"
	"yamlgate/internal/modkit/httpkit"
	"yamlgate/internal/modkit/swaggerkit"

	metamod "yamlgate/internal/services/api/meta/module"
	gatemod "yamlgate/internal/services/gatekeeper/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// Stack tunes the shared middleware
	Stack httpkit.StackOptions

	// Gate overrides GATE_ config, zero values keep the configured ones
	Gate gatemod.Options
}

// Mount mounts docs, the profiler and every module under /api/v1
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil && opt.Store.PG != nil {
		deps.PG = opt.Store.PG
	}

	// the gatekeeper owns the grammar registry, meta reports it
	gate := gatemod.New(deps, opt.Gate)
	grammars := modkit.MustPortsOf[gatemod.Ports](gate).Grammars

	mods := []modkit.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Grammars: grammars})),
		gate,
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := opt.Stack
	if stack.SlowRequest == 0 {
		stack.SlowRequest = 500 * time.Millisecond
	}
	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(api httpkit.Router) {
		for _, m := range mods {
			deps.Log.Debug().Str("module", m.Name()).Msg("mounting module")
			m.MountRoutes(api)
		}
	})
}

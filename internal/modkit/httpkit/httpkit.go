// Package httpkit is what modules import to mount routes, it aliases the platform http seam
package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "yamlgate/internal/platform/net/http"
	"yamlgate/internal/platform/net/middleware"
)

type (
	// Router is the platform router seam
	Router = phttp.Router
	// Envelope is the response body
	Envelope = phttp.Envelope
	// Response lets a handler choose its status
	Response = phttp.Response
)

// Get mounts a handler without a request body
func Get(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Get(path, phttp.Call(fn))
}

// PostJSON mounts a handler that receives a validated T
func PostJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(fn))
}

// MountAPIV1 mounts everything under /api/v1 behind mw
func MountAPIV1(r Router, mw []middleware.Middleware, mount func(Router)) {
	r.Route("/api/v1", func(api Router) {
		api.Use(mw...)
		mount(api)
	})
}

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration
	SlowRequest time.Duration
	CORSOrigins []string
}

// CommonStack is the middleware every api route runs behind, outermost first
func CommonStack(o StackOptions) []middleware.Middleware {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []middleware.Middleware{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(o.SlowRequest),
		middleware.RecoverJSON(phttp.JSON),
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/api/v1/health"),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}

// Protected mounts fn's routes in a group behind bearer auth, a nil port leaves them open
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(g Router) {
		g.Use(middleware.Auth(p, phttp.JSON))
		fn(g)
	})
}

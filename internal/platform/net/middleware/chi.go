// Package middleware holds the http middleware stack, thin wrappers over chi plus our own json aware pieces
package middleware

import (
	"net/http"
	"time"

	"yamlgate/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Middleware is the stdlib middleware shape
type Middleware = func(http.Handler) http.Handler

// RequestID assigns or propagates X-Request-ID, echoes it and tags request logs with it
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return chimw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chimw.GetReqID(r.Context())
			w.Header().Set(chimw.RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(logger.WithRequest(r.Context(), id, "")))
		}))
	}
}

// RealIP trusts X-Forwarded-For and X-Real-IP
func RealIP() Middleware { return chimw.RealIP }

// NoCache disables client and proxy caching
func NoCache() Middleware { return chimw.NoCache }

// Compress gzips json responses at level
func Compress(level int) Middleware {
	return chimw.Compress(level, "application/json")
}

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// StripSlashes drops a trailing slash before routing
func StripSlashes() Middleware { return chimw.StripSlashes }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// CORSOptions is the subset of go-chi/cors we expose
type CORSOptions struct {
	AllowedOrigins []string
	MaxAge         int
}

// CORS allows GET and POST with the gate headers from o.AllowedOrigins
func CORS(o CORSOptions) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", chimw.RequestIDHeader},
		ExposedHeaders: []string{chimw.RequestIDHeader},
		MaxAge:         o.MaxAge,
	})
}

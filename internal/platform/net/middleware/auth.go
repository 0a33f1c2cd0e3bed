package middleware

import (
	"net/http"

	"yamlgate/internal/platform/logger"
	pnet "yamlgate/internal/platform/net"
)

// AuthPort authenticates a request and names the caller
type AuthPort interface {
	Parse(r *http.Request) (caller string, err error)
}

// Auth rejects requests the port refuses with an error envelope written by write
// a nil port lets every request through
func Auth(p AuthPort, write func(http.ResponseWriter, int, any)) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			caller, err := p.Parse(r)
			if err != nil {
				status, env := pnet.Failure(err, pnet.RequestID(r.Context()))
				write(w, status, env)
				return
			}
			ctx := pnet.WithCaller(r.Context(), caller)
			ctx = logger.WithRequest(ctx, "", caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

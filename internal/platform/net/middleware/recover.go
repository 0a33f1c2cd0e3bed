package middleware

import (
	"net/http"
	"runtime/debug"

	perr "yamlgate/internal/platform/errors"
	"yamlgate/internal/platform/logger"
	pnet "yamlgate/internal/platform/net"
)

// RecoverJSON turns a handler panic into a 500 error envelope and logs the stack
// http.ErrAbortHandler is re-panicked so the server can drop the connection
func RecoverJSON(write func(http.ResponseWriter, int, any)) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logger.C(r.Context()).Error().
					Interface("panic", v).
					Bytes("stack", debug.Stack()).
					Str("path", r.URL.Path).
					Msg("panic recovered")
				status, env := pnet.Failure(perr.PanicErrf("panic recovered"), pnet.RequestID(r.Context()))
				write(w, status, env)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

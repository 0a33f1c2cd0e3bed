package httpkit

import (
	"net/http"
	"strings"

	perr "yamlgate/internal/platform/errors"
)

// TokenFunc checks a bearer token and names its caller
type TokenFunc func(token string) (caller string, err error)

// Port implements middleware.AuthPort over the Authorization header
type Port struct{ check TokenFunc }

// NewPortFunc returns a Port that delegates to fn
func NewPortFunc(fn TokenFunc) *Port { return &Port{check: fn} }

// Parse reads "Bearer <token>", the scheme is case insensitive
// every failure is unauthorized and hides why the token was refused
func (p *Port) Parse(r *http.Request) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	if p.check == nil {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	caller, err := p.check(token)
	if err != nil {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	return caller, nil
}

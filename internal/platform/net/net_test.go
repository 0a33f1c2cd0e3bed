package net

import (
	"context"
	"errors"
	"net/http"
	"testing"

	perr "yamlgate/internal/platform/errors"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestRequestIDAndCaller(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "host/abc-000001")
	ctx = WithCaller(ctx, "hook")

	if got := RequestID(ctx); got != "host/abc-000001" {
		t.Fatalf("RequestID = %q", got)
	}
	if got := Caller(ctx); got != "hook" {
		t.Fatalf("Caller = %q", got)
	}
	if got := Caller(WithCaller(context.Background(), "")); got != "" {
		t.Fatalf("empty caller should not be stored, got %q", got)
	}
}

func TestFailure(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
		code   perr.ErrorCode
		field  string
	}{
		{"coded", perr.Unauthorizedf("invalid hook token"), http.StatusUnauthorized, perr.ErrorCodeUnauthorized, ""},
		{"field", perr.WithField(perr.InvalidArgf("duplicate path"), "files"), http.StatusUnprocessableEntity, perr.ErrorCodeInvalidArgument, "files"},
		{"foreign", errors.New("boom"), http.StatusInternalServerError, perr.ErrorCodeUnknown, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := Failure(tc.err, "rid")
			if status != tc.status || env.StatusCode != tc.status {
				t.Fatalf("status = %d/%d, want %d", status, env.StatusCode, tc.status)
			}
			if env.Code != tc.code || env.Field != tc.field || env.RequestID != "rid" {
				t.Fatalf("envelope = %+v", env)
			}
		})
	}
}

func TestSuccess(t *testing.T) {
	t.Parallel()
	env := Success(http.StatusOK, map[string]bool{"allowed": true}, "")
	if env.Status != "OK" || env.Data == nil || env.Error != "" {
		t.Fatalf("envelope = %+v", env)
	}
}

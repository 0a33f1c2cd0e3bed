package http

import (
	"net/http"

	"yamlgate/internal/platform/net/http/bind"
)

// JSONHandler binds and validates a T from the body before calling fn
// fn may return a Response to pick its own status
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Call(func(r *http.Request) (any, error) {
		in, err := bind.ParseJSON[T](r, bind.MaxBody)
		if err != nil {
			return nil, err
		}
		return fn(r, in)
	})
}

// Call adapts a handler that reads no body
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}

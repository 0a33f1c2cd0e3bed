package http

import (
	"encoding/json"
	"net/http"

	pnet "yamlgate/internal/platform/net"
)

// Envelope is the json body of every response
type Envelope = pnet.Envelope

// JSON writes v with status
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes err as an error envelope
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, env := pnet.Failure(err, pnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// Response is returned by return style handlers
// a Body that is an error becomes an error envelope
type Response struct {
	Status int
	Body   any
	Header http.Header
}

// OK is a 200 with data
func OK(data any) Response { return Response{Status: http.StatusOK, Body: data} }

// Error maps err to its status
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a return style handler
func Handle(h func(*http.Request) Response) Handler {
	return func(w http.ResponseWriter, r *http.Request) { h(r).write(w, r) }
}

func (resp Response) write(w http.ResponseWriter, r *http.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok {
		WriteError(w, r, err)
		return
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	JSON(w, status, pnet.Success(status, resp.Body, pnet.RequestID(r.Context())))
}

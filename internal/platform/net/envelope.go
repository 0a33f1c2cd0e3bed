package net

import (
	"net/http"

	perr "yamlgate/internal/platform/errors"
)

// Envelope is the body of every json response
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Success wraps data in an envelope for status
func Success(status int, data any, reqID string) Envelope {
	return Envelope{StatusCode: status, Status: http.StatusText(status), RequestID: reqID, Data: data}
}

// Failure maps err to its status and error envelope
func Failure(err error, reqID string) (int, Envelope) {
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		Field:      w.Field,
		RequestID:  reqID,
	}
}

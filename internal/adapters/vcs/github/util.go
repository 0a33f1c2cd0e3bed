package github

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	perr "yamlgate/internal/platform/errors"
)

var (
	errRateLimited = errors.New("rate limited")
	errTransient   = errors.New("transient server error")
	errUnexpected  = errors.New("unexpected status")
)

// GHStatusError wraps non-2xx HTTP responses from GitHub
type GHStatusError struct {
	Status int
	Body   string
	Err    error
}

// Error interface
func (e *GHStatusError) Error() string {
	if e.Body == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Body
}

// Unwrap interface
func (e *GHStatusError) Unwrap() error { return e.Err }

// HTTPStatus interface
func (e *GHStatusError) HTTPStatus() int { return e.Status }

func parseRateHeaders(h http.Header) (remaining int, reset time.Time, retryAfter int) {
	remaining = atoi(h.Get("X-RateLimit-Remaining"), -1)
	if sec := atoi(h.Get("X-RateLimit-Reset"), 0); sec > 0 {
		reset = time.Unix(int64(sec), 0).UTC()
	}
	retryAfter = atoi(h.Get("Retry-After"), 0)
	return
}

// computeWait decides how long to wait based on headers
func computeWait(remaining int, reset time.Time, retryAfter int, now time.Time) time.Duration {
	if retryAfter > 0 {
		return time.Duration(retryAfter) * time.Second
	}
	if remaining == 0 && !reset.IsZero() && reset.After(now) {
		return reset.Sub(now)
	}
	return 0
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}

// StatusOf returns the GitHub HTTP status carried by err or 0
func StatusOf(err error) int {
	var gse *GHStatusError
	if errors.As(err, &gse) {
		return gse.Status
	}
	return 0
}

// IsNotFound reports whether err is a 404 from GitHub
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound || perr.IsCode(err, perr.ErrorCodeNotFound)
}

// IsRateLimited reports whether err is a 429 or secondary 403 rate limit
func IsRateLimited(err error) bool {
	return errors.Is(err, errRateLimited)
}

// Package github is the GitHub REST v3 side of the gate
// it lists the files a push or pull request changes, streams file content and declines pull requests
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	perr "yamlgate/internal/platform/errors"
	"yamlgate/internal/platform/logger"
)

const (
	baseURLDefault   = "https://api.github.com"
	defaultTimeout   = 10 * time.Second
	defaultUA        = "yamlgate"
	defaultMaxRetry  = 3
	defaultRetryBase = 250 * time.Millisecond

	mediaJSON = "application/vnd.github+json"
	mediaRaw  = "application/vnd.github.raw+json"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Comma separated tokens, rotated round robin
	// empty means anonymous which cannot comment or close pull requests
	TokensCSV string

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration
}

// Client is a minimal GitHub REST client with token rotation and retries
type Client struct {
	http   *http.Client
	opts   Options
	tokens []string
	cur    atomic.Int32
	log    logger.Logger
	now    func() time.Time
	sleep  func(context.Context, time.Duration) error
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	var toks []string
	if s := strings.TrimSpace(o.TokensCSV); s != "" {
		for t := range strings.SplitSeq(s, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				toks = append(toks, t)
			}
		}
	}
	return &Client{
		http:   &http.Client{Timeout: o.Timeout},
		opts:   o,
		tokens: toks,
		log:    *logger.Named("github"),
		now:    time.Now,
		sleep:  sleepCtx,
	}
}

// getToken returns the next token in a round robin rotation
func (c *Client) getToken() string {
	n := int(c.cur.Add(1))
	if len(c.tokens) == 0 {
		return ""
	}
	return c.tokens[n%len(c.tokens)]
}

// request describes one call for Do
type request struct {
	method string
	path   string
	accept string
	body   []byte
}

// ReqOption tweaks a request built by Do
type ReqOption func(*request) error

// WithAccept overrides the Accept media type
func WithAccept(media string) ReqOption {
	return func(r *request) error { r.accept = media; return nil }
}

// WithJSON sends v as the JSON request body
func WithJSON(v any) ReqOption {
	return func(r *request) error {
		b, err := json.Marshal(v)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeJSON, "github encode body")
		}
		r.body = b
		return nil
	}
}

// Do issues a request with auth headers, retries, and rate limit handling
// a returned response always has a 2xx status and the caller owns its body
func (c *Client) Do(ctx context.Context, method, path string, opts ...ReqOption) (*http.Response, error) {
	rq := request{method: method, path: path, accept: mediaJSON}
	for _, o := range opts {
		if err := o(&rq); err != nil {
			return nil, err
		}
	}

	url := c.opts.BaseURL + path
	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var body io.Reader
		if rq.body != nil {
			body = bytes.NewReader(rq.body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, body)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", rq.accept)
		req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
		if rq.body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if tok := c.getToken(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github %s %s failed", method, path)
			}
			back := c.backoff(attempts)
			c.log.Warn().Err(err).Dur("retry_in", back).Int("attempt", attempts).Msg("github transport error retrying")
			if err := c.sleep(ctx, back); err != nil {
				return nil, err
			}
			attempts++
			continue
		}

		rem, reset, retryAfter := parseRateHeaders(resp.Header)
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Int("rate_remaining", rem).
			Time("rate_reset", reset).
			Int("retry_after_s", retryAfter).
			Msg("github http response")

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return resp, nil
		case resp.StatusCode == http.StatusTooManyRequests,
			resp.StatusCode == http.StatusForbidden && (rem == 0 || retryAfter > 0):
			wait := computeWait(rem, reset, retryAfter, c.now())
			if wait <= 0 {
				wait = c.backoff(attempts)
			}
			_ = drainAndClose(resp.Body)
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrap(&GHStatusError{Status: resp.StatusCode, Err: errRateLimited}, perr.ErrorCodeTooManyRequests, "github rate limited")
			}
			c.log.Warn().Dur("sleep", wait).Msg("github rate limited backing off")
			if err := c.sleep(ctx, wait); err != nil {
				return nil, err
			}
			attempts++
			continue
		case resp.StatusCode == http.StatusBadGateway,
			resp.StatusCode == http.StatusServiceUnavailable,
			resp.StatusCode == http.StatusGatewayTimeout:
			_ = drainAndClose(resp.Body)
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrap(&GHStatusError{Status: resp.StatusCode, Err: errTransient}, perr.ErrorCodeUnavailable, "github transient server error")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("github transient error retrying")
			if err := c.sleep(ctx, back); err != nil {
				return nil, err
			}
			attempts++
			continue
		default:
			return nil, statusError(method, path, resp)
		}
	}
}

// statusError reads a small tail of body for diagnostics and maps the status to a code
func statusError(method, path string, resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	_ = resp.Body.Close()
	gse := &GHStatusError{Status: resp.StatusCode, Body: string(b), Err: errUnexpected}

	code := perr.ErrorCodeUnknown
	switch resp.StatusCode {
	case http.StatusNotFound:
		code = perr.ErrorCodeNotFound
	case http.StatusUnauthorized:
		code = perr.ErrorCodeUnauthorized
	case http.StatusForbidden:
		code = perr.ErrorCodeForbidden
	case http.StatusUnprocessableEntity:
		code = perr.ErrorCodeInvalidArgument
	case http.StatusConflict:
		code = perr.ErrorCodeConflict
	}
	return perr.Wrapf(gse, code, "github %s %s status %d", method, path, resp.StatusCode)
}

// decodeJSON reads at most limit bytes of resp into out and closes the body
func (c *Client) decodeJSON(resp *http.Response, limit int64, out any) error {
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Msg("github close body failed")
		}
	}()
	b, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "github read body")
	}
	if err := json.Unmarshal(b, out); err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "github decode body")
	}
	return nil
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase
	// simple exponential with cap
	ms := int64(d / time.Millisecond)
	ms = ms << uint(attempt)
	ceiling := int64(30 * time.Second / time.Millisecond)
	if ms > ceiling {
		ms = ceiling
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

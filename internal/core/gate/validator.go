package gate

import (
	"context"
	"errors"
	"fmt"

	perr "yamlgate/internal/platform/errors"
	"yamlgate/internal/platform/logger"

	"github.com/rs/zerolog"
)

// Validator runs the filter, fetch and check pipeline over a change sequence
// it holds no per call state and is safe for concurrent use
type Validator struct {
	policy   Policy
	fetch    Fetcher
	check    Checker
	log      logger.Logger
	maxBytes int64
}

// Option configures a Validator
type Option func(*Validator)

// WithPolicy replaces the default yaml policy
func WithPolicy(p Policy) Option { return func(v *Validator) { v.policy = p } }

// WithLogger sets the logger used for skip and rejection events
func WithLogger(l logger.Logger) Option { return func(v *Validator) { v.log = l } }

// WithMaxBytes caps how much of one document is read, 0 means unlimited
func WithMaxBytes(n int64) Option { return func(v *Validator) { v.maxBytes = n } }

// grammarNamer is implemented by checkers that can name the grammar used for a path
type grammarNamer interface {
	GrammarOf(path string) string
}

// New builds a Validator over the given collaborators
func New(f Fetcher, c Checker, opts ...Option) *Validator {
	if f == nil {
		panic("gate.Validator requires a non nil Fetcher")
	}
	if c == nil {
		panic("gate.Validator requires a non nil Checker")
	}
	v := &Validator{
		policy: DefaultPolicy(),
		fetch:  f,
		check:  c,
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Policy returns the policy in use
func (v *Validator) Policy() Policy { return v.policy }

// Validate walks in.Changes once and stops at the first failure
func (v *Validator) Validate(ctx context.Context, in Input) Outcome {
	var out Outcome
	if in.Changes == nil {
		return out
	}

	for c, err := range in.Changes {
		if ctx.Err() != nil {
			return aborted(ctx, out)
		}
		if err != nil {
			return failed(out, perr.Wrap(err, perr.ErrorCodeUnavailable, "list changes"))
		}

		if ok, reason := v.policy.check(c); !ok {
			out.Skipped++
			v.log.Debug().Str("path", c.Path).Stringer("kind", c.Kind).Str("reason", reason).Msg("skipping change")
			continue
		}

		text, err := v.load(ctx, in, c.Path)
		if err != nil {
			if ctx.Err() != nil {
				return aborted(ctx, out)
			}
			if se, ok := AsSyntax(err); ok {
				return v.rejected(out, c.Path, se)
			}
			return failed(out, err)
		}
		if blank(text) {
			out.Skipped++
			v.log.Debug().Str("path", c.Path).Msg("skipping empty document")
			continue
		}

		out.Checked++
		if err := v.run(c.Path, text); err != nil {
			if se, ok := AsSyntax(err); ok {
				return v.rejected(out, c.Path, se)
			}
			return failed(out, perr.Wrapf(err, perr.ErrorCodeUnknown, "check %s", c.Path))
		}
	}

	out.Verdict = Accepted
	return out
}

// load fetches and decodes one document
func (v *Validator) load(ctx context.Context, in Input, path string) (string, error) {
	rc, err := v.fetch.Fetch(ctx, in.Repo, in.Revision, path)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "fetch %s at %s", path, in.Revision)
	}
	b, err := readAll(rc, v.maxBytes)
	cerr := rc.Close()
	if err != nil {
		if errors.Is(err, ErrTooLarge) {
			return "", perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read %s: limit %d bytes", path, v.maxBytes)
		}
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "read %s", path)
	}
	if cerr != nil {
		v.log.Warn().Err(cerr).Str("path", path).Msg("close content failed")
	}

	text, err := decodeText(b)
	if err != nil {
		return "", &SyntaxError{Message: fmt.Sprintf("invalid text encoding: %v", err)}
	}
	return text, nil
}

// run calls the checker, turning a panic into an ordinary error
func (v *Validator) run(path, text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = perr.Newf(perr.ErrorCodePanic, "checker panic: %v", r)
		}
	}()
	return v.check.Check(path, text)
}

func (v *Validator) rejected(out Outcome, path string, se *SyntaxError) Outcome {
	grammar := se.Grammar
	if grammar == "" {
		if n, ok := v.check.(grammarNamer); ok {
			grammar = n.GrammarOf(path)
		}
	}
	v.log.Error().Str("path", path).Str("grammar", grammar).Str("diagnostic", se.Message).Msg("invalid document")
	out.Verdict = Rejected
	out.Path = path
	out.Grammar = grammar
	out.Diagnostic = se.Message
	return out
}

func failed(out Outcome, err error) Outcome {
	out.Verdict = Failed
	out.Err = err
	return out
}

func aborted(ctx context.Context, out Outcome) Outcome {
	out.Verdict = Aborted
	out.Err = fmt.Errorf("%w: %w", ErrAborted, context.Cause(ctx))
	return out
}

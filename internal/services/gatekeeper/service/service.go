// Package service runs push and merge hooks through the gate
package service

import (
	"context"
	"strings"

	"yamlgate/internal/core/gate"
	perr "yamlgate/internal/platform/errors"
	"yamlgate/internal/platform/logger"
	"yamlgate/internal/services/gatekeeper/domain"

	"github.com/rs/zerolog"
)

// Service defines the service contract for the gatekeeper
type Service interface{ domain.ServicePort }

// Options wires the gatekeeper collaborators
// Source, Fetcher and Checker are required, the rest are optional
type Options struct {
	Source   domain.ChangeSource
	Fetcher  gate.Fetcher
	Checker  gate.Checker
	Decliner domain.Decliner
	Audit    domain.AuditPort

	// Policy overrides the policy derived from the checker
	Policy *gate.Policy

	// MaxBytes caps one document, 0 means unlimited
	MaxBytes int64

	// DeclineOnReject declines pull requests that fail validation
	DeclineOnReject bool

	Log *logger.Logger
}

// policied is implemented by checkers that know which files they can check
type policied interface{ Policy() gate.Policy }

// Svc implements the Service interface
type Svc struct {
	src      domain.ChangeSource
	decliner domain.Decliner
	audit    domain.AuditPort
	check    gate.Checker
	gate     *gate.Validator
	gateOpts []gate.Option
	decline  bool
	log      logger.Logger
}

// New creates a gatekeeper service
func New(o Options) *Svc {
	if o.Source == nil {
		panic("gatekeeper.Service requires a non nil ChangeSource")
	}
	if o.Fetcher == nil {
		panic("gatekeeper.Service requires a non nil Fetcher")
	}
	if o.Checker == nil {
		panic("gatekeeper.Service requires a non nil Checker")
	}

	log := zerolog.Nop()
	if o.Log != nil {
		log = *o.Log
	}

	policy := gate.DefaultPolicy()
	if p, ok := o.Checker.(policied); ok {
		policy = p.Policy()
	}
	if o.Policy != nil {
		policy = *o.Policy
	}

	opts := []gate.Option{
		gate.WithPolicy(policy),
		gate.WithLogger(log),
		gate.WithMaxBytes(o.MaxBytes),
	}
	return &Svc{
		src:      o.Source,
		decliner: o.Decliner,
		audit:    o.Audit,
		check:    o.Checker,
		gate:     gate.New(o.Fetcher, o.Checker, opts...),
		gateOpts: opts,
		decline:  o.DeclineOnReject,
		log:      log,
	}
}

// Push validates every ref update of a push and stops at the first failure
// deleted refs carry no content and are skipped
func (s *Svc) Push(ctx context.Context, in domain.PushInput) (domain.Decision, error) {
	repo := gate.RepoRef(in.Repository)
	total := domain.Decision{Allowed: true, Status: domain.StatusAccepted}
	refs := make([]string, 0, len(in.Updates))

	for _, u := range in.Updates {
		to := gate.Revision(u.To)
		if to.IsZero() {
			s.log.Debug().Str("repository", in.Repository).Str("ref", u.Ref).Msg("skipping deleted ref")
			continue
		}
		refs = append(refs, u.Ref)

		out := s.gate.Validate(ctx, gate.Input{
			Repo:     repo,
			Revision: to,
			Changes:  s.src.Changes(ctx, repo, gate.Revision(u.From), to),
		})
		total.Checked += out.Checked
		total.Skipped += out.Skipped
		if out.OK() {
			continue
		}

		d := decide(out)
		d.Ref = u.Ref
		d.Checked, d.Skipped = total.Checked, total.Skipped
		s.logDecision(in.Repository, u.Ref, d)
		s.record(ctx, domain.DecisionRecord{
			Kind:       domain.KindPush,
			Repository: in.Repository,
			Ref:        u.Ref,
			Revision:   u.To,
		}, d)
		return d, abortErr(out)
	}

	s.logDecision(in.Repository, strings.Join(refs, ","), total)
	s.record(ctx, domain.DecisionRecord{
		Kind:       domain.KindPush,
		Repository: in.Repository,
		Ref:        strings.Join(refs, ","),
	}, total)
	return total, nil
}

// Merge validates what the source branch of a pull request adds over its target
// a rejection declines the pull request when declining is enabled
func (s *Svc) Merge(ctx context.Context, in domain.MergeInput) (domain.Decision, error) {
	repo := gate.RepoRef(in.Repository)
	pr := in.PullRequest
	from := gate.Revision(pr.FromCommit)

	s.log.Info().
		Str("repository", in.Repository).
		Int("pull_request", pr.Number).
		Int("version", pr.Version).
		Str("title", pr.Title).
		Str("author", pr.Author).
		Msg("checking pull request")

	out := s.gate.Validate(ctx, gate.Input{
		Repo:     repo,
		Revision: from,
		Changes:  s.mergeChanges(ctx, repo, pr),
	})

	d := decide(out)
	d.Ref = pr.FromRef
	if out.Verdict == gate.Rejected {
		d.Comment = DeclineComment(out.Grammar, out.Path, out.Diagnostic)
		d.Declined = s.declinePull(ctx, repo, pr, d.Comment)
	}

	s.logDecision(in.Repository, pr.FromRef, d)
	s.record(ctx, domain.DecisionRecord{
		Kind:        domain.KindMerge,
		Repository:  in.Repository,
		Ref:         pr.FromRef,
		Revision:    pr.FromCommit,
		PullNumber:  pr.Number,
		PullVersion: pr.Version,
	}, d)
	return d, abortErr(out)
}

// mergeChanges prefers the host's pull request file list when there is one
func (s *Svc) mergeChanges(ctx context.Context, repo gate.RepoRef, pr domain.PullRequest) gate.Changes {
	if pc, ok := s.src.(domain.PullChangeSource); ok && pr.Number > 0 {
		return pc.PullChanges(ctx, repo, pr.Number)
	}
	return s.src.Changes(ctx, repo, gate.Revision(pr.ToCommit), gate.Revision(pr.FromCommit))
}

// declinePull reports whether the pull request was declined
// a failed decline is logged, the veto stands either way
func (s *Svc) declinePull(ctx context.Context, repo gate.RepoRef, pr domain.PullRequest, comment string) bool {
	if !s.decline || s.decliner == nil || pr.Number <= 0 {
		return false
	}
	if err := s.decliner.Decline(context.WithoutCancel(ctx), repo, pr.Number, comment); err != nil {
		s.log.Error().Err(err).Str("repository", string(repo)).Int("pull_request", pr.Number).Msg("decline pull request failed")
		return false
	}
	return true
}

// Recent lists audited decisions, empty when the audit log is off
func (s *Svc) Recent(ctx context.Context, in domain.RecentInput) ([]domain.DecisionRecord, error) {
	if s.audit == nil {
		return []domain.DecisionRecord{}, nil
	}
	return s.audit.Recent(ctx, in)
}

func (s *Svc) logDecision(repo, ref string, d domain.Decision) {
	ev := s.log.Info()
	if !d.Allowed {
		ev = s.log.Warn()
	}
	ev.Str("repository", repo).
		Str("ref", ref).
		Str("status", d.Status).
		Str("path", d.Path).
		Int("checked", d.Checked).
		Int("skipped", d.Skipped).
		Msg("gate decision")
}

// abortErr surfaces cancellation to the caller, the host is no longer waiting on a decision
func abortErr(out gate.Outcome) error {
	if out.Verdict != gate.Aborted {
		return nil
	}
	return perr.Wrap(out.Err, perr.ErrorCodeUnavailable, "validation aborted")
}

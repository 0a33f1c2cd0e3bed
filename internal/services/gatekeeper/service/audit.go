package service

import (
	"context"

	"yamlgate/internal/modkit/repokit"
	"yamlgate/internal/services/gatekeeper/domain"
	"yamlgate/internal/services/gatekeeper/repo"

	"github.com/google/uuid"
)

// record stores d in the audit log
// a failed write is logged and never changes the decision
func (s *Svc) record(ctx context.Context, rec domain.DecisionRecord, d domain.Decision) {
	if s.audit == nil {
		return
	}
	rec.ID = uuid.NewString()
	rec.Allowed = d.Allowed
	rec.Status = d.Status
	rec.Path = d.Path
	rec.Grammar = d.Grammar
	rec.Diagnostic = d.Diagnostic
	rec.Message = d.Message

	if err := s.audit.Record(context.WithoutCancel(ctx), rec); err != nil {
		s.log.Error().Err(err).Str("repository", rec.Repository).Str("status", rec.Status).Msg("audit write failed")
	}
}

// Audit implements domain.AuditPort over the decisions repository
type Audit struct {
	Repo repo.Repo
}

// NewAudit binds the decisions repository to db
func NewAudit(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Audit {
	if db == nil {
		panic("gatekeeper.Audit requires a non nil TxRunner")
	}
	if binder == nil {
		panic("gatekeeper.Audit requires a non nil Repo binder")
	}
	return &Audit{Repo: repokit.MustBind(binder, db)}
}

// Record implements domain.AuditPort
func (a *Audit) Record(ctx context.Context, rec domain.DecisionRecord) error {
	return a.Repo.Insert(ctx, repo.RowDecision{
		ID:          rec.ID,
		Kind:        rec.Kind,
		Repository:  rec.Repository,
		Ref:         rec.Ref,
		Revision:    rec.Revision,
		PullNumber:  rec.PullNumber,
		PullVersion: rec.PullVersion,
		Allowed:     rec.Allowed,
		Status:      rec.Status,
		Path:        rec.Path,
		Grammar:     rec.Grammar,
		Diagnostic:  rec.Diagnostic,
		Message:     rec.Message,
	})
}

// Recent implements domain.AuditPort
func (a *Audit) Recent(ctx context.Context, in domain.RecentInput) ([]domain.DecisionRecord, error) {
	rows, err := a.Repo.Recent(ctx, in.Repository, in.Status, in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DecisionRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.DecisionRecord{
			ID:          r.ID,
			Kind:        r.Kind,
			Repository:  r.Repository,
			Ref:         r.Ref,
			Revision:    r.Revision,
			PullNumber:  r.PullNumber,
			PullVersion: r.PullVersion,
			Allowed:     r.Allowed,
			Status:      r.Status,
			Path:        r.Path,
			Grammar:     r.Grammar,
			Diagnostic:  r.Diagnostic,
			Message:     r.Message,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}

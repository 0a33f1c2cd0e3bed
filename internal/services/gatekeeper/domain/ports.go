package domain

import (
	"context"

	"yamlgate/internal/core/gate"
)

// ChangeSource lists what until adds over since in a repository
type ChangeSource interface {
	Changes(ctx context.Context, repo gate.RepoRef, since, until gate.Revision) gate.Changes
}

// PullChangeSource is implemented by hosts that can list a pull request's files directly
type PullChangeSource interface {
	PullChanges(ctx context.Context, repo gate.RepoRef, number int) gate.Changes
}

// Decliner declines a pull request with a comment
type Decliner interface {
	Decline(ctx context.Context, repo gate.RepoRef, number int, comment string) error
}

// AuditPort stores and lists decisions
type AuditPort interface {
	Record(ctx context.Context, rec DecisionRecord) error
	Recent(ctx context.Context, in RecentInput) ([]DecisionRecord, error)
}

// ServicePort defines the gatekeeper service contract
type ServicePort interface {
	Push(ctx context.Context, in PushInput) (Decision, error)
	Merge(ctx context.Context, in MergeInput) (Decision, error)
	Validate(ctx context.Context, in ValidateInput) (Decision, error)
	Recent(ctx context.Context, in RecentInput) ([]DecisionRecord, error)
}

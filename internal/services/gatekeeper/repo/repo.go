// Package repo provides postgres access for the decision audit log
package repo

import (
	"context"

	"yamlgate/internal/modkit/repokit"
	perr "yamlgate/internal/platform/errors"
	"yamlgate/internal/platform/store"
)

// Repo defines the repository contract for gate decisions
type Repo interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, row RowDecision) error
	Recent(ctx context.Context, repository, status string, limit int) ([]RowDecision, error)
}

// RowDecision represents a gate_decisions row
type RowDecision struct {
	ID          string
	Kind        string
	Repository  string
	Ref         string
	Revision    string
	PullNumber  int
	PullVersion int
	Allowed     bool
	Status      string
	Path        string
	Grammar     string
	Diagnostic  string
	Message     string
	CreatedAt   string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const schema = `
create table if not exists gate_decisions (
	id uuid primary key,
	kind text not null,
	repository text not null,
	ref text not null default '',
	revision text not null default '',
	pr_number integer not null default 0,
	pr_version integer not null default 0,
	allowed boolean not null,
	status text not null,
	path text not null default '',
	grammar text not null default '',
	diagnostic text not null default '',
	message text not null default '',
	created_at timestamptz not null default now()
);
create index if not exists gate_decisions_repo_created_idx on gate_decisions (repository, created_at desc);
`

func (r *queries) EnsureSchema(ctx context.Context) error {
	if _, err := store.Exec(ctx, r.q, schema); err != nil {
		return perr.FromPostgres(err, "create gate_decisions")
	}
	return nil
}

func (r *queries) Insert(ctx context.Context, row RowDecision) error {
	const sql = `
insert into gate_decisions
(id, kind, repository, ref, revision, pr_number, pr_version, allowed, status, path, grammar, diagnostic, message)
values ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`
	err := store.ExecOne(ctx, r.q, sql,
		row.ID, row.Kind, row.Repository, row.Ref, row.Revision,
		row.PullNumber, row.PullVersion, row.Allowed, row.Status,
		row.Path, row.Grammar, row.Diagnostic, row.Message,
	)
	if perr.IsDuplicateKey(err) {
		return perr.Wrapf(err, perr.ErrorCodeDuplicateKey, "decision %s exists", row.ID)
	}
	return perr.FromPostgres(err, "insert gate decision")
}

func (r *queries) Recent(ctx context.Context, repository, status string, limit int) ([]RowDecision, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const sql = `
select id::text, kind, repository, ref, revision, pr_number, pr_version, allowed, status,
path, grammar, diagnostic, message,
to_char(created_at at time zone 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS"Z"')
from gate_decisions
where ($1 = '' or repository = $1)
and ($2 = '' or status = $2)
order by created_at desc
limit $3
`
	out, err := store.Many(ctx, r.q, scanRow, sql, repository, status, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list gate decisions")
	}
	return out, nil
}

func scanRow(row store.Row) (RowDecision, error) {
	var rr RowDecision
	err := row.Scan(
		&rr.ID,
		&rr.Kind,
		&rr.Repository,
		&rr.Ref,
		&rr.Revision,
		&rr.PullNumber,
		&rr.PullVersion,
		&rr.Allowed,
		&rr.Status,
		&rr.Path,
		&rr.Grammar,
		&rr.Diagnostic,
		&rr.Message,
		&rr.CreatedAt,
	)
	return rr, err
}

package store

import (
	"context"
	"time"

	"yamlgate/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxQuerier is what pgxpool.Pool and pgx.Tx have in common
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// traced adapts a pgx querier to RowQuerier and reports every statement to tracer
type traced struct {
	q      pgxQuerier
	tracer pg.QueryTracer
	slowMs int
}

func (t traced) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := t.q.Exec(ctx, sql, args...)
	t.emit(ctx, sql, args, start, err)
	return ct, err
}

func (t traced) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.q.Query(ctx, sql, args...)
	t.emit(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// QueryRow reports once Scan has run so the error is known
func (t traced) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	return scanHook{r: t.q.QueryRow(ctx, sql, args...), done: func(err error) { t.emit(ctx, sql, args, start, err) }}
}

func (t traced) emit(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if t.tracer == nil {
		return
	}
	el := time.Since(start)
	t.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: el.Microseconds(),
		Err:       err,
		Slow:      t.slowMs >= 0 && el >= time.Duration(t.slowMs)*time.Millisecond,
	})
}

type scanHook struct {
	r    pgx.Row
	done func(error)
}

func (s scanHook) Scan(dst ...any) error {
	err := s.r.Scan(dst...)
	s.done(err)
	return err
}

// pgDB is the TxRunner over a pool
type pgDB struct {
	pool *pg.PG
	q    traced
}

func (d *pgDB) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return d.q.Exec(ctx, sql, args...)
}

func (d *pgDB) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return d.q.Query(ctx, sql, args...)
}

func (d *pgDB) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return d.q.QueryRow(ctx, sql, args...)
}

// Ping lets readiness probes reach the pool
func (d *pgDB) Ping(ctx context.Context) error { return d.pool.Pool.Ping(ctx) }

// Tx commits when fn returns nil and rolls back otherwise
func (d *pgDB) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := d.pool.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(traced{q: tx, tracer: d.q.tracer, slowMs: d.q.slowMs}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

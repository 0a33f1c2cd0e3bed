package store

import (
	"context"
	"fmt"

	perr "yamlgate/internal/platform/errors"
)

// Exec runs a statement and returns its tag
func Exec(ctx context.Context, q RowQuerier, sql string, args ...any) (CommandTag, error) {
	return q.Exec(ctx, sql, args...)
}

// ExecOne runs a write that must touch exactly one row
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if n := tag.RowsAffected(); n != 1 {
		return fmt.Errorf("%s: %d rows affected, want 1", tag.String(), n)
	}
	return nil
}

// One scans exactly one row, no rows is perr.ErrNotFound
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	var zero T
	all, err := Many(ctx, q, scan, sql, args...)
	switch {
	case err != nil:
		return zero, err
	case len(all) == 0:
		return zero, perr.ErrNotFound
	case len(all) > 1:
		return zero, fmt.Errorf("%d rows, want 1", len(all))
	}
	return all[0], nil
}

// Many scans every row with scan
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Package repokit is the seam between domain repositories and the store
package repokit

import (
	"context"

	"yamlgate/internal/platform/store"
)

type (
	// Queryer is what a bound repository runs statements on
	Queryer = store.RowQuerier
	// TxRunner is a Queryer that can also open a transaction
	TxRunner = store.TxRunner
	// Rows is a query result set
	Rows = store.Rows
	// Row is a single row result
	Row = store.Row
	// CommandTag reports what a statement changed
	CommandTag = store.CommandTag
)

// Binder builds a domain repository over a Queryer
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a func to Binder
type BindFunc[T any] func(Queryer) T

// Bind implements Binder
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind binds q and panics on a nil Queryer
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return b.Bind(q)
}

// WithTx binds b inside a transaction on tx and hands the repository to fn
func WithTx[T any](ctx context.Context, tx TxRunner, b Binder[T], fn func(T) error) error {
	return tx.Tx(ctx, func(q Queryer) error { return fn(b.Bind(q)) })
}

// Package store opens the optional storage backends and exposes the small
// sql surface repositories are written against
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yamlgate/internal/platform/logger"
	"yamlgate/internal/platform/store/pg"
)

// Row is a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag reports what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is a RowQuerier that can also run fn inside a transaction
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Store holds the opened backends, a nil seam means the backend is disabled
type Store struct {
	Log logger.Logger
	PG  TxRunner

	closers []func()
}

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger used for sql tracing
func WithLogger(l logger.Logger) Option {
	return func(s *Store) error {
		s.Log = l
		return nil
	}
}

// Open connects every backend enabled in cfg
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	if cfg.PG.Enabled {
		db, err := openPG(ctx, cfg.PG, s.Log)
		if err != nil {
			return nil, err
		}
		s.PG = &pgDB{pool: db, q: traced{q: db.Pool, tracer: db.Tracer, slowMs: db.SlowMs}}
		s.closers = append(s.closers, db.Close)
	}
	return s, nil
}

// Close releases every opened backend
func (s *Store) Close(context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
	return nil
}

// openPG builds the pool and pings it with backoff until it answers
func openPG(ctx context.Context, cfg PGConfig, log logger.Logger) (*pg.PG, error) {
	var tracer pg.QueryTracer
	if cfg.LogSQL {
		tracer = pg.Tracer(log)
	}
	db, err := pg.Open(ctx, pg.Config{URL: cfg.URL, MaxConns: cfg.MaxConns, SlowMs: cfg.SlowQueryMs}, tracer, nil)
	if err != nil {
		return nil, err
	}

	attempts := cfg.ConnectRetries
	if attempts <= 0 {
		attempts = 20
	}
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	wait := 150 * time.Millisecond

	var lastErr error
	for range attempts {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = db.Pool.Ping(pctx)
		cancel()
		if lastErr == nil {
			return db, nil
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			db.Close()
			return nil, ctx.Err()
		case <-t.C:
		}
		wait = min(wait*2, 2*time.Second)
	}
	db.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, lastErr)
}

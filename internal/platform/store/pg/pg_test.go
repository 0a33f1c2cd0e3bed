package pg

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"yamlgate/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func TestOpen_BadURL(t *testing.T) {
	t.Parallel()
	if _, err := Open(context.Background(), Config{URL: "://bad"}, nil, nil); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestOpen_AppliesMaxConnsAndTune(t *testing.T) {
	testkit.Serial(t)

	var seen *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, pc *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = pc
		return &pgxpool.Pool{}, nil
	})

	tuned := false
	p, err := Open(context.Background(),
		Config{URL: "postgres://u:p@db:5432/gate?sslmode=disable", MaxConns: 3, SlowMs: 250},
		nil,
		func(*pgxpool.Config) { tuned = true },
	)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !tuned {
		t.Fatal("tune not called")
	}
	if seen.MaxConns != 3 {
		t.Fatalf("MaxConns = %d, want 3", seen.MaxConns)
	}
	if p.SlowMs != 250 {
		t.Fatalf("SlowMs = %d, want 250", p.SlowMs)
	}
}

func TestOpen_PoolError(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, errors.New("dial")
	})
	if _, err := Open(context.Background(), Config{URL: "postgres://db/gate"}, nil, nil); err == nil {
		t.Fatal("expected pool error")
	}
}

func TestClose_NilSafe(t *testing.T) {
	t.Parallel()
	var p *PG
	p.Close()
	(&PG{}).Close()
}

func TestTracer_SlowIsWarnAndSQLIsCompacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	tr.OnQuery(context.Background(), QueryEvent{SQL: "select *\n\tfrom gate_decisions", ElapsedUS: 1500})
	tr.OnQuery(context.Background(), QueryEvent{SQL: "insert", Slow: true})

	out := buf.String()
	testkit.MustContain(t, out, `"level":"info"`)
	testkit.MustContain(t, out, `"sql":"select * from gate_decisions"`)
	testkit.MustContain(t, out, `"elapsed_ms":1.5`)
	testkit.MustContain(t, out, `"level":"warn"`)
	testkit.MustContain(t, out, `"component":"pg"`)
}

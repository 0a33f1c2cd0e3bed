package repo

import (
	"context"
	"errors"
	"strings"
	"testing"

	perr "yamlgate/internal/platform/errors"
	"yamlgate/internal/platform/store"
)

type tag string

func (t tag) String() string      { return string(t) }
func (t tag) RowsAffected() int64 { return 1 }

// fakeQ records statements and returns canned results
type fakeQ struct {
	sql  []string
	args [][]any
	err  error
}

func (f *fakeQ) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	if f.err != nil {
		return nil, f.err
	}
	return tag("INSERT 0 1"), nil
}

func (f *fakeQ) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	return nil, f.err
}

func (f *fakeQ) QueryRow(context.Context, string, ...any) store.Row { return nil }

func TestInsert_PassesColumnsInOrder(t *testing.T) {
	q := &fakeQ{}
	r := NewPG().Bind(q)
	row := RowDecision{ID: "id-1", Kind: "push", Repository: "acme/app", Status: "accepted", Allowed: true, Path: "a.yaml"}
	if err := r.Insert(context.Background(), row); err != nil {
		t.Fatalf("insert: %v", err)
	}
	args := q.args[0]
	if len(args) != 13 || args[0] != "id-1" || args[2] != "acme/app" || args[7] != true || args[9] != "a.yaml" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestInsert_WrapsDBError(t *testing.T) {
	r := NewPG().Bind(&fakeQ{err: errors.New("conn reset")})
	err := r.Insert(context.Background(), RowDecision{ID: "x"})
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("want db code, got %v", err)
	}
}

func TestRecent_ClampsLimit(t *testing.T) {
	for _, in := range []int{0, -1, 500} {
		q := &fakeQ{err: errors.New("stop")}
		_, _ = NewPG().Bind(q).Recent(context.Background(), "", "", in)
		if got := q.args[0][2]; got != 50 {
			t.Fatalf("limit %d clamped to %v, want 50", in, got)
		}
	}
}

func TestEnsureSchema(t *testing.T) {
	q := &fakeQ{}
	if err := NewPG().Bind(q).EnsureSchema(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(q.sql[0], "create table if not exists gate_decisions") {
		t.Fatalf("unexpected schema sql %q", q.sql[0])
	}
}

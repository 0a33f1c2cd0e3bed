package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"yamlgate/internal/platform/testkit"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errw bytes.Buffer
	cmd := New(strings.NewReader(stdin), &out, &errw)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errw.String(), err
}

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "ok.yaml", "a:\n  b: 1\n")
	write(t, dir, "notes.txt", "a:\n  b\n    c: true\n")
	write(t, dir, ".git/config.yaml", "a:\n  b\n    c: true\n")
	write(t, dir, "nested/also.yml", "- 1\n- 2\n")

	out, _, err := run(t, "", "check", dir)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	testkit.MustContain(t, out, "2 checked")

	bad := write(t, dir, "nested/bad.yml", "a:\n  b\n    c: true\n")
	_, errOut, err := run(t, "", "check", dir)
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("want ErrRejected, got %v", err)
	}
	testkit.MustContain(t, errOut, "Invalid YAML content detected when reading file "+bad+": ")
}

func TestCheck_Extensions(t *testing.T) {
	dir := t.TempDir()
	p := write(t, dir, "c.json", `{"a":`)

	if _, _, err := run(t, "", "check", p); err != nil {
		t.Fatalf("json is not checked by default: %v", err)
	}
	_, errOut, err := run(t, "", "--extensions", "yaml,json", "check", p)
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("want ErrRejected, got %v", err)
	}
	testkit.MustContain(t, errOut, "Invalid JSON content detected")

	if _, _, err := run(t, "", "--extensions", "ini", "check", p); err == nil || errors.Is(err, ErrRejected) {
		t.Fatalf("unknown extension is a usage error, got %v", err)
	}
}

func TestCheck_MissingPathFails(t *testing.T) {
	_, errOut, err := run(t, "", "check", filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("want ErrRejected, got %v", err)
	}
	testkit.MustContain(t, errOut, "Could not validate changes")
}

func TestCheck_MaxBytes(t *testing.T) {
	p := write(t, t.TempDir(), "big.yaml", "a: "+strings.Repeat("x", 100)+"\n")
	_, errOut, err := run(t, "", "--max-bytes", "10", "check", p)
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("want ErrRejected, got %v", err)
	}
	testkit.MustContain(t, errOut, "Could not validate changes")
}

func git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=t", "GIT_AUTHOR_EMAIL=t@example.com",
		"GIT_COMMITTER_NAME=t", "GIT_COMMITTER_EMAIL=t@example.com",
		"GIT_CONFIG_NOSYSTEM=1", "HOME="+dir,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

func TestPreReceive(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	git(t, dir, "init", "-q")
	write(t, dir, "values.yaml", "a: 1\n")
	git(t, dir, "add", ".")
	git(t, dir, "commit", "-q", "-m", "one")
	first := git(t, dir, "rev-parse", "HEAD")

	write(t, dir, "values.yaml", "a:\n  b\n    c: true\n")
	git(t, dir, "commit", "-q", "-am", "two")
	second := git(t, dir, "rev-parse", "HEAD")
	zero := strings.Repeat("0", 40)

	_, errOut, err := run(t, first+" "+second+" refs/heads/main\n", "pre-receive", "--git-dir", dir)
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("want ErrRejected, got %v", err)
	}
	testkit.MustContain(t, errOut, "Invalid YAML content detected when reading file values.yaml: ")

	if _, _, err := run(t, zero+" "+first+" refs/heads/new\n", "pre-receive", "--git-dir", dir); err != nil {
		t.Fatalf("new branch at a valid commit: %v", err)
	}
	if _, _, err := run(t, second+" "+zero+" refs/heads/gone\n", "pre-receive", "--git-dir", dir); err != nil {
		t.Fatalf("deleting a branch: %v", err)
	}
	if _, _, err := run(t, "", "pre-receive", "--git-dir", dir); err != nil {
		t.Fatalf("empty input: %v", err)
	}
	if _, _, err := run(t, "garbage\n", "pre-receive", "--git-dir", dir); err == nil {
		t.Fatalf("malformed input must fail")
	}
}

func TestVersionFlag(t *testing.T) {
	out, _, err := run(t, "", "--version")
	if err != nil {
		t.Fatal(err)
	}
	testkit.MustContain(t, out, "dev (none, unknown)")
}

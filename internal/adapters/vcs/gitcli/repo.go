// Package gitcli serves the gate from a local repository through the git binary
// it is what a server side pre-receive hook runs against
package gitcli

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"yamlgate/internal/core/gate"
	perr "yamlgate/internal/platform/errors"
	"yamlgate/internal/platform/logger"
)

// emptyTree is the id of the empty tree object in every sha1 repository
const emptyTree = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// Repo runs git inside one repository directory
type Repo struct {
	Dir string
	Bin string
	log logger.Logger
}

// Open returns a Repo for dir, an empty dir means the working directory
func Open(dir string) *Repo {
	return &Repo{Dir: dir, Bin: "git", log: *logger.Named("gitcli")}
}

// Ref returns the repository identity handed to the gate
func (r *Repo) Ref() gate.RepoRef { return gate.RepoRef(r.Dir) }

// dir picks the directory for a call, the gate hands back what Ref returned
func (r *Repo) dir(ref gate.RepoRef) string {
	if ref != "" {
		return string(ref)
	}
	return r.Dir
}

// command builds a git command in dir
func (r *Repo) command(ctx context.Context, dir string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, r.Bin, args...)
	cmd.Dir = dir
	return cmd
}

// Git runs a git command and returns trimmed stdout
func (r *Repo) Git(ctx context.Context, args ...string) (string, error) {
	cmd := r.command(ctx, r.Dir, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", gitErr(ctx, args, err, stderr.String())
	}
	return strings.TrimRight(string(out), "\n"), nil
}

// EmptyTree returns the empty tree id for this repository's hash algorithm
func (r *Repo) EmptyTree(ctx context.Context) string {
	id, err := r.Git(ctx, "hash-object", "-t", "tree", "/dev/null")
	if err != nil || id == "" {
		return emptyTree
	}
	return id
}

func gitErr(ctx context.Context, args []string, err error, stderr string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		msg = err.Error()
	}
	return perr.Wrapf(err, perr.ErrorCodeUnavailable, "git %s: %s", args[0], msg)
}

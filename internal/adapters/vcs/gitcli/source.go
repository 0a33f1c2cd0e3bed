package gitcli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"yamlgate/internal/core/gate"
	perr "yamlgate/internal/platform/errors"
)

// Changes streams the tree difference between since and until
// a zero since diffs against the empty tree, a zero until yields nothing
// only exact renames are paired, an edited rename arrives as a delete and an add
func (r *Repo) Changes(ctx context.Context, repo gate.RepoRef, since, until gate.Revision) gate.Changes {
	return func(yield func(gate.Change, error) bool) {
		if until.IsZero() {
			return
		}
		base := string(since)
		if since.IsZero() {
			base = r.EmptyTree(ctx)
			r.log.Debug().Str("dir", r.dir(repo)).Str("base", base).Str("until", string(until)).Msg("new ref diffed against the empty tree")
		}

		cctx, cancel := context.WithCancel(ctx)
		defer cancel()

		args := []string{"diff", "--name-status", "-z", "-M100%", "--no-ext-diff", base, string(until)}
		cmd := r.command(cctx, r.dir(repo), args...)
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		out, err := cmd.StdoutPipe()
		if err != nil {
			yield(gate.Change{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "git diff pipe"))
			return
		}
		if err := cmd.Start(); err != nil {
			yield(gate.Change{}, gitErr(ctx, args, err, ""))
			return
		}

		stopped := false
		parseErr := parseNameStatus(out, func(c gate.Change) bool {
			if !yield(c, nil) {
				stopped = true
				return false
			}
			return true
		})
		if stopped {
			cancel()
			_ = cmd.Wait()
			return
		}
		werr := cmd.Wait()
		if parseErr != nil {
			yield(gate.Change{}, parseErr)
			return
		}
		if werr != nil {
			yield(gate.Change{}, gitErr(ctx, args, werr, stderr.String()))
		}
	}
}

// parseNameStatus reads NUL separated name-status records
// renames and copies carry a score and two paths, the second is the new one
func parseNameStatus(r io.Reader, emit func(gate.Change) bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	sc.Split(splitNUL)
	for sc.Scan() {
		status := sc.Text()
		if status == "" {
			continue
		}
		paths := 1
		if status[0] == 'R' || status[0] == 'C' {
			paths = 2
		}
		var path string
		for range paths {
			if !sc.Scan() {
				return perr.Newf(perr.ErrorCodeUnavailable, "git diff: truncated record for status %q", status)
			}
			path = sc.Text()
		}
		if !emit(gate.Change{Path: path, Kind: kindOf(status)}) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "git diff read")
	}
	return nil
}

func kindOf(status string) gate.ChangeKind {
	switch status[0] {
	case 'A':
		return gate.KindAdded
	case 'M':
		return gate.KindModified
	case 'D':
		return gate.KindRemoved
	case 'R':
		return gate.KindRenamed
	default:
		return gate.KindOther
	}
}

func splitNUL(data []byte, atEOF bool) (int, []byte, error) {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Fetch implements gate.Fetcher by streaming git cat-file
func (r *Repo) Fetch(ctx context.Context, repo gate.RepoRef, rev gate.Revision, path string) (io.ReadCloser, error) {
	cctx, cancel := context.WithCancel(ctx)
	args := []string{"cat-file", "blob", string(rev) + ":" + strings.TrimPrefix(path, "/")}
	cmd := r.command(cctx, r.dir(repo), args...)
	p := &blobReader{ctx: ctx, args: args, cmd: cmd, cancel: cancel}
	cmd.Stderr = &p.stderr
	out, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "git cat-file pipe")
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, gitErr(ctx, args, err, "")
	}
	p.out = out
	return p, nil
}

// blobReader surfaces a failing git process as a read error instead of a short read
type blobReader struct {
	ctx    context.Context
	args   []string
	cmd    interface{ Wait() error }
	out    io.ReadCloser
	stderr bytes.Buffer
	cancel context.CancelFunc

	once sync.Once
	err  error
}

func (b *blobReader) Read(p []byte) (int, error) {
	n, err := b.out.Read(p)
	if err == io.EOF {
		if werr := b.wait(); werr != nil {
			return n, werr
		}
	}
	return n, err
}

func (b *blobReader) Close() error {
	b.cancel()
	_ = b.wait()
	return nil
}

func (b *blobReader) wait() error {
	b.once.Do(func() {
		if err := b.cmd.Wait(); err != nil {
			b.err = gitErr(b.ctx, b.args, err, b.stderr.String())
		}
		b.cancel()
	})
	return b.err
}

package gate

import (
	"context"
	"io"
)

// Fetcher streams the content of path as of rev
// implementations must honour ctx and never return partial content without an error
type Fetcher interface {
	Fetch(ctx context.Context, repo RepoRef, rev Revision, path string) (io.ReadCloser, error)
}

// Checker parses a document and returns nil or a *SyntaxError
// path lets a checker pick a grammar; single grammar checkers ignore it
type Checker interface {
	Check(path, content string) error
}

// FetcherFunc adapts a function to Fetcher
type FetcherFunc func(ctx context.Context, repo RepoRef, rev Revision, path string) (io.ReadCloser, error)

// Fetch calls f
func (f FetcherFunc) Fetch(ctx context.Context, repo RepoRef, rev Revision, path string) (io.ReadCloser, error) {
	return f(ctx, repo, rev, path)
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(path, content string) error

// Check calls f
func (f CheckerFunc) Check(path, content string) error { return f(path, content) }

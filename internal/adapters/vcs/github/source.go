package github

import (
	"context"
	"io"
	"strings"

	"yamlgate/internal/core/gate"
	perr "yamlgate/internal/platform/errors"
	"yamlgate/internal/platform/logger"
)

const defaultPerPage = 100

// Source serves the gate from the GitHub API
// repositories are addressed as owner/name
type Source struct {
	c       *Client
	log     logger.Logger
	perPage int
}

// NewSource wraps a client
func NewSource(c *Client) *Source {
	return &Source{c: c, log: *logger.Named("github.source"), perPage: defaultPerPage}
}

// Changes lists what until adds over since
// a zero since means a new branch and compares against the default branch
func (s *Source) Changes(ctx context.Context, repo gate.RepoRef, since, until gate.Revision) gate.Changes {
	return func(yield func(gate.Change, error) bool) {
		owner, name, err := splitRepo(repo)
		if err != nil {
			yield(gate.Change{}, err)
			return
		}

		base := string(since)
		if since.IsZero() {
			r, err := s.c.Repository(ctx, owner, name)
			if err != nil {
				yield(gate.Change{}, err)
				return
			}
			base = r.DefaultBranch
			s.log.Debug().Str("repo", string(repo)).Str("base", base).Msg("new ref compared against default branch")
		}

		cmp, err := s.c.Compare(ctx, owner, name, base, string(until))
		if err != nil {
			yield(gate.Change{}, err)
			return
		}
		if len(cmp.Files) >= compareFileCap {
			yield(gate.Change{}, perr.Newf(perr.ErrorCodeUnavailable,
				"comparison %s...%s lists %d files and may be truncated", base, until, len(cmp.Files)))
			return
		}
		for _, f := range cmp.Files {
			if !yield(toChange(f), nil) {
				return
			}
		}
	}
}

// PullChanges pages through the files of a pull request
// reaching pullFileCap ends the sequence with an error since later files are not listed
func (s *Source) PullChanges(ctx context.Context, repo gate.RepoRef, number int) gate.Changes {
	return func(yield func(gate.Change, error) bool) {
		owner, name, err := splitRepo(repo)
		if err != nil {
			yield(gate.Change{}, err)
			return
		}
		seen := 0
		for page := 1; ; page++ {
			files, err := s.c.PullFiles(ctx, owner, name, number, page, s.perPage)
			if err != nil {
				yield(gate.Change{}, err)
				return
			}
			for _, f := range files {
				if !yield(toChange(f), nil) {
					return
				}
				seen++
			}
			if seen >= pullFileCap {
				yield(gate.Change{}, perr.Newf(perr.ErrorCodeUnavailable,
					"pull request %d lists %d files and may be truncated", number, seen))
				return
			}
			if len(files) < s.perPage {
				return
			}
		}
	}
}

// Fetch implements gate.Fetcher
func (s *Source) Fetch(ctx context.Context, repo gate.RepoRef, rev gate.Revision, path string) (io.ReadCloser, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}
	return s.c.RawContent(ctx, owner, name, path, string(rev))
}

// Decline comments on a pull request and closes it
func (s *Source) Decline(ctx context.Context, repo gate.RepoRef, number int, comment string) error {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return err
	}
	if _, err := s.c.Comment(ctx, owner, name, number, comment); err != nil {
		return err
	}
	if _, err := s.c.ClosePull(ctx, owner, name, number); err != nil {
		return err
	}
	s.log.Info().Str("repo", string(repo)).Int("pull", number).Msg("pull request declined")
	return nil
}

// toChange maps a listed file, a rename that also edits lines counts as modified
func toChange(f File) gate.Change {
	kind := gate.ParseKind(f.Status)
	if kind == gate.KindRenamed && f.Additions+f.Deletions > 0 {
		kind = gate.KindModified
	}
	return gate.Change{Path: f.Filename, Kind: kind}
}

func splitRepo(r gate.RepoRef) (string, string, error) {
	owner, name, ok := strings.Cut(string(r), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", perr.InvalidArgf("repository %q is not owner/name", r)
	}
	return owner, name, nil
}

package service

import (
	"context"
	"io"
	"strings"

	"yamlgate/internal/core/gate"
	perr "yamlgate/internal/platform/errors"
	"yamlgate/internal/services/gatekeeper/domain"
)

// inlineRepo names the repository of submitted documents in logs and the audit log
const inlineRepo = "inline"

// Validate checks submitted documents with the same policy and checker as the hooks
// files without a kind count as added
func (s *Svc) Validate(ctx context.Context, in domain.ValidateInput) (domain.Decision, error) {
	docs := make(map[string]string, len(in.Files))
	changes := make([]gate.Change, 0, len(in.Files))
	for _, f := range in.Files {
		if _, dup := docs[f.Path]; dup {
			return domain.Decision{}, perr.WithField(perr.InvalidArgf("duplicate path %s", f.Path), "files")
		}
		docs[f.Path] = f.Content

		kind := gate.KindAdded
		if f.Kind != "" {
			kind = gate.ParseKind(f.Kind)
		}
		changes = append(changes, gate.Change{Path: f.Path, Kind: kind})
	}

	v := gate.New(inlineFetcher(docs), s.check, s.gateOpts...)
	out := v.Validate(ctx, gate.Input{
		Repo:    inlineRepo,
		Changes: gate.SliceChanges(changes),
	})

	d := decide(out)
	s.logDecision(inlineRepo, "", d)
	s.record(ctx, domain.DecisionRecord{Kind: domain.KindValidate, Repository: inlineRepo}, d)
	return d, abortErr(out)
}

// inlineFetcher serves submitted documents by path
func inlineFetcher(docs map[string]string) gate.Fetcher {
	return gate.FetcherFunc(func(_ context.Context, _ gate.RepoRef, _ gate.Revision, path string) (io.ReadCloser, error) {
		doc, ok := docs[path]
		if !ok {
			return nil, perr.NotFoundf("no document %s", path)
		}
		return io.NopCloser(strings.NewReader(doc)), nil
	})
}

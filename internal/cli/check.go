package cli

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"yamlgate/internal/core/gate"
	perr "yamlgate/internal/platform/errors"
	"yamlgate/internal/platform/logger"
	"yamlgate/internal/services/gatekeeper/service"

	"github.com/spf13/cobra"
)

func checkCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check local files, directories are walked",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := f.registry()
			if err != nil {
				return err
			}
			v := gate.New(localFetcher(), reg,
				gate.WithPolicy(reg.Policy()),
				gate.WithMaxBytes(f.maxBytes),
				gate.WithLogger(*logger.Named("check")),
			)
			out := v.Validate(cmd.Context(), gate.Input{Changes: walk(args)})

			w := cmd.ErrOrStderr()
			switch out.Verdict {
			case gate.Accepted:
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d checked, %d skipped\n", out.Checked, out.Skipped)
				return nil
			case gate.Rejected:
				fmt.Fprintln(w, service.PushMessage(out.Grammar, out.Path, out.Diagnostic))
			default:
				fmt.Fprintln(w, service.FailureMessage(out.Err))
			}
			return ErrRejected
		},
	}
}

// walk yields every file under paths as an added change
func walk(paths []string) gate.Changes {
	return func(yield func(gate.Change, error) bool) {
		stopped := false
		for _, root := range paths {
			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					if d.Name() == ".git" && p != root {
						return filepath.SkipDir
					}
					return nil
				}
				if !yield(gate.Change{Path: p, Kind: gate.KindAdded}, nil) {
					stopped = true
					return filepath.SkipAll
				}
				return nil
			})
			if stopped {
				return
			}
			if err != nil {
				yield(gate.Change{}, perr.Wrapf(err, perr.ErrorCodeNotFound, "walk %s", root))
				return
			}
		}
	}
}

// localFetcher reads files from disk, revisions are ignored
func localFetcher() gate.Fetcher {
	return gate.FetcherFunc(func(_ context.Context, _ gate.RepoRef, _ gate.Revision, path string) (io.ReadCloser, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}

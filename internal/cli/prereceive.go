package cli

import (
	"fmt"
	"os"

	"yamlgate/internal/adapters/vcs/gitcli"
	"yamlgate/internal/platform/logger"
	"yamlgate/internal/services/gatekeeper/domain"
	"yamlgate/internal/services/gatekeeper/service"

	"github.com/spf13/cobra"
)

func preReceiveCmd(f *flags) *cobra.Command {
	var gitDir string
	cmd := &cobra.Command{
		Use:   "pre-receive",
		Short: "Run as a git pre-receive hook, reading ref updates from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := f.registry()
			if err != nil {
				return err
			}
			updates, err := gitcli.ParseRefUpdates(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(updates) == 0 {
				return nil
			}

			repo := gitcli.Open(gitDir)
			log := logger.Named("pre-receive")
			svc := service.New(service.Options{
				Source:   repo,
				Fetcher:  repo,
				Checker:  reg,
				MaxBytes: f.maxBytes,
				Log:      log,
			})

			in := domain.PushInput{Repository: string(repo.Ref())}
			for _, u := range updates {
				in.Updates = append(in.Updates, domain.RefUpdate{Ref: u.Ref, From: string(u.Old), To: string(u.New)})
			}
			d, err := svc.Push(cmd.Context(), in)
			if err != nil {
				return err
			}
			if !d.Allowed {
				fmt.Fprintln(cmd.ErrOrStderr(), d.Message)
				return ErrRejected
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&gitDir, "git-dir", os.Getenv("GIT_DIR"), "repository to read, defaults to GIT_DIR or the working directory")
	return cmd
}

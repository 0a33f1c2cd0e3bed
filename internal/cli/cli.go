// Package cli is the yamlgate command line: a git pre-receive hook and a local checker
package cli

import (
	"errors"
	"io"
	"os"

	"yamlgate/internal/core/syntax"
	"yamlgate/internal/core/version"
	"yamlgate/internal/platform/config"
	"yamlgate/internal/platform/logger"
	gatemod "yamlgate/internal/services/gatekeeper/module"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ErrRejected is returned when the gate refused the changes
// the reason has already been written to the error stream
var ErrRejected = errors.New("changes rejected")

// flags shared by every subcommand
type flags struct {
	extensions []string
	maxBytes   int64
	verbose    bool
}

// New builds the root command reading in and writing to out and errw
func New(in io.Reader, out, errw io.Writer) *cobra.Command {
	defaults := gatemod.FromConfig(config.New())
	f := &flags{}

	root := &cobra.Command{
		Use:           "yamlgate",
		Short:         "Reject changes that carry malformed YAML",
		Version:       version.Info().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initLogger(errw, f.verbose)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errw)

	pf := root.PersistentFlags()
	pf.StringSliceVar(&f.extensions, "extensions", defaults.Extensions, "document extensions to check")
	pf.Int64Var(&f.maxBytes, "max-bytes", defaults.MaxFileBytes, "largest document read, 0 for no limit")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log every skipped change")

	root.AddCommand(preReceiveCmd(f), checkCmd(f))
	return root
}

// registry builds the checker for the configured extensions
func (f *flags) registry() (*syntax.Registry, error) {
	return syntax.For(f.extensions)
}

// initLogger sends logs to errw, quiet unless asked otherwise
func initLogger(errw io.Writer, verbose bool) {
	opt := logger.FromEnv()
	opt.Writer = errw
	if _, set := os.LookupEnv("LOG_LEVEL"); !set {
		opt.Level = zerolog.WarnLevel.String()
	}
	if verbose {
		opt.Level = zerolog.DebugLevel.String()
	}
	logger.Init(opt)
}

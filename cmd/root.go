// Package cmd implements the goalvshole command line interface
package cmd

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
	runID    string
}

// NewRootCommand returns the goalvshole command with all of its
// subcommands attached
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "goalvshole",
		Short:        "Tabular Q-learning on the goal-versus-hole gridworld",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.runID = uuid.NewString()
			return setupLogging(cmd.ErrOrStderr(), opts.logLevel, opts.runID)
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")

	root.AddCommand(TrainCommand(opts), EvalCommand())
	return root
}

// Execute runs the root command with the process arguments
func Execute() error {
	return NewRootCommand().Execute()
}

// setupLogging installs the default structured logger writing to w
func setupLogging(w io.Writer, level, runID string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return errors.Wrapf(err, "unknown log level %q", level)
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: l,
	}))
	slog.SetDefault(logger.With("run", runID))
	return nil
}

func mkdir(dir string) error {
	return errors.Wrapf(os.MkdirAll(dir, 0o755), "could not create %v", dir)
}

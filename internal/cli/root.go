// Package cli implements the saju command line tool, which computes charts
// offline with the same services the HTTP server uses.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phrazzld/saju-api/internal/platform/logger"
	"github.com/phrazzld/saju-api/internal/service"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	logLevel string
}

// newLogger builds a text logger on stderr tagged with the command name.
func (o *rootOptions) newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, ok := logger.ParseLevel(o.logLevel)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q (expected debug|info|warn|error)", o.logLevel)
	}
	log := logger.New(cmd.ErrOrStderr(), level, logger.FormatText)
	return log.With(slog.String("cmd", cmd.Name())), nil
}

// readingService builds the service on top of the command logger.
func (o *rootOptions) readingService(cmd *cobra.Command) (service.ReadingService, error) {
	log, err := o.newLogger(cmd)
	if err != nil {
		return nil, err
	}
	return service.NewDefaultReadingService(log), nil
}

// NewRootCmd returns the saju root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "saju",
		Short:         "Four pillars birth chart calculator",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug|info|warn|error (logs go to stderr)")

	cmd.AddCommand(chartCmd(opts))
	cmd.AddCommand(starsCmd(opts))
	cmd.AddCommand(readingCmd(opts))
	cmd.AddCommand(rulesCmd())
	cmd.AddCommand(batchCmd(opts))
	return cmd
}

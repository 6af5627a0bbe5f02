package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/frontstrap/frontstrap/internal/branding"
	"github.com/frontstrap/frontstrap/internal/config"
	"github.com/frontstrap/frontstrap/internal/runner"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Flags shared by the root command and doctor.
var (
	flagTimeout time.Duration
	flagVerbose bool
)

// newRunner builds the subprocess runner. Tests replace it with a recorder.
var newRunner = func(out, errOut io.Writer, timeout time.Duration, logger *slog.Logger) runner.Runner {
	r := &runner.ExecRunner{Timeout: timeout, Logger: logger}
	if flagVerbose {
		r.Stdout = out
		r.Stderr = errOut
	}
	return r
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <name> <web|telegram>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a Vite + React + TypeScript frontend with Tailwind CSS,
React Router and a Docker/nginx deployment setup. Projects of type "telegram"
additionally get the Telegram Mini App SDK wired into the root component.

Examples:
  ` + branding.CLIName() + ` coffee-shop web
  ` + branding.CLIName() + ` shop-bot telegram --dir ~/src`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		slog.SetDefault(newLogger(cmd.ErrOrStderr()))
	},
	RunE: runCreate,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "Per-command timeout (default from config, 2m)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Stream tool output and log debug details")
}

// newLogger returns the text logger used for debug traces on stderr.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// settings resolves config values with command-line overrides applied.
func settings() config.Settings {
	s := config.Current()
	if flagTimeout > 0 {
		s.Timeout = flagTimeout
	}
	return s
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the running subprocess, which triggers the rollback.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

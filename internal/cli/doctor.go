package cli

import (
	"log/slog"

	"github.com/frontstrap/frontstrap/internal/config"
	"github.com/frontstrap/frontstrap/internal/prereq"
	"github.com/frontstrap/frontstrap/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the required tools are installed",
	Long:  `Verify that the JavaScript runtime and package manager are installed and recent enough to scaffold a project.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settings()
		out := cmd.OutOrStdout()
		p := ui.NewPrinter(out)
		r := newRunner(out, cmd.ErrOrStderr(), s.Timeout, slog.Default())

		reqs := prereq.Defaults(s.Runtime, s.PackageManager, s.MinNodeVersion, s.MinNPMVersion)
		if _, err := prereq.Check(cmd.Context(), r, p, reqs); err != nil {
			return err
		}

		p.Println()
		p.Step("Configuration")
		p.Info("config file %s", config.FilePath())
		p.Info("vite template %s", s.ViteTemplate)
		p.Info("timeout %s", s.Timeout)
		return nil
	},
}

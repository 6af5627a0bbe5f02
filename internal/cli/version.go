package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/frontstrap/frontstrap/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

// versionInfo is the build metadata reported by "version".
type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go"`
	Platform  string `json:"platform"`
}

func currentVersion() versionInfo {
	return versionInfo{
		Version:   buildVersion,
		Commit:    buildCommit,
		Date:      buildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printVersion(cmd.OutOrStdout(), currentVersion())
	},
}

func printVersion(w io.Writer, info versionInfo) error {
	switch {
	case versionShort:
		fmt.Fprintln(w, info.Version)
	case versionJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("encoding version info: %w", err)
		}
	default:
		fmt.Fprintf(w, "%s %s\n", branding.DisplayName(), info.Version)
		fmt.Fprintf(w, "  commit:   %s\n", info.Commit)
		fmt.Fprintf(w, "  built:    %s\n", info.Date)
		fmt.Fprintf(w, "  go:       %s\n", info.GoVersion)
		fmt.Fprintf(w, "  platform: %s\n", info.Platform)
	}
	return nil
}

package cli

import (
	"fmt"
	"slices"

	"github.com/frontstrap/frontstrap/internal/branding"
	"github.com/frontstrap/frontstrap/internal/config"
	"github.com/spf13/cobra"
)

var configKeys = []string{
	config.KeyPackageManager,
	config.KeyRuntime,
	config.KeyViteTemplate,
	config.KeyTimeout,
	config.KeyMinNodeVersion,
	config.KeyMinNPMVersion,
	config.KeyAPIBaseURL,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/` + branding.HomeDir() + `/config.yaml.

Keys: package_manager, runtime, vite_template, timeout, min_node_version, min_npm_version, api_base_url`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateConfigKey(key); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateConfigKey(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

func validateConfigKey(key string) error {
	if !slices.Contains(configKeys, key) {
		return fmt.Errorf("unknown config key %q: valid keys are %v", key, configKeys)
	}
	return nil
}

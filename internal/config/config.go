package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/frontstrap/frontstrap/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the config file and FRONTSTRAP_* environment variables.
const (
	KeyPackageManager = "package_manager"
	KeyRuntime        = "runtime"
	KeyViteTemplate   = "vite_template"
	KeyTimeout        = "timeout"
	KeyMinNodeVersion = "min_node_version"
	KeyMinNPMVersion  = "min_npm_version"
	KeyAPIBaseURL     = "api_base_url"
)

// Defaults applied when neither the config file nor the environment set a key.
const (
	DefaultPackageManager = "npm"
	DefaultRuntime        = "node"
	DefaultViteTemplate   = "react-ts"
	DefaultTimeout        = 2 * time.Minute
	DefaultMinNodeVersion = "18.0.0"
	DefaultMinNPMVersion  = "9.0.0"
	DefaultAPIBaseURL     = "/api"
)

// Settings is the resolved view of the configuration used by a scaffold run.
type Settings struct {
	PackageManager string
	Runtime        string
	ViteTemplate   string
	Timeout        time.Duration
	MinNodeVersion string
	MinNPMVersion  string
	APIBaseURL     string
}

// Dir returns the path to the config directory (~/.frontstrap/).
// FRONTSTRAP_HOME overrides the location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.frontstrap/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyPackageManager, DefaultPackageManager)
	viper.SetDefault(KeyRuntime, DefaultRuntime)
	viper.SetDefault(KeyViteTemplate, DefaultViteTemplate)
	viper.SetDefault(KeyTimeout, DefaultTimeout)
	viper.SetDefault(KeyMinNodeVersion, DefaultMinNodeVersion)
	viper.SetDefault(KeyMinNPMVersion, DefaultMinNPMVersion)
	viper.SetDefault(KeyAPIBaseURL, DefaultAPIBaseURL)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the resolved settings. Call Load first.
func Current() Settings {
	timeout := viper.GetDuration(KeyTimeout)
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return Settings{
		PackageManager: viper.GetString(KeyPackageManager),
		Runtime:        viper.GetString(KeyRuntime),
		ViteTemplate:   viper.GetString(KeyViteTemplate),
		Timeout:        timeout,
		MinNodeVersion: viper.GetString(KeyMinNodeVersion),
		MinNPMVersion:  viper.GetString(KeyMinNPMVersion),
		APIBaseURL:     viper.GetString(KeyAPIBaseURL),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Package config manages user-level settings stored at ~/.frontstrap/config.yaml.
// Values can be overridden with FRONTSTRAP_* environment variables and, at the
// command line, with flags. It covers the package manager and runtime binaries,
// the Vite template name, the subprocess timeout and minimum tool versions.
package config

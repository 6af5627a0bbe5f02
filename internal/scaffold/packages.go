package scaffold

import (
	"slices"

	"github.com/frontstrap/frontstrap/internal/project"
)

// TelegramSDK is appended to the runtime packages of telegram projects.
const TelegramSDK = "@telegram-apps/sdk"

// Tailwind v4 is configured through its Vite plugin, so both ship as runtime
// packages alongside the router and the HTTP client stack.
var (
	runtimePackages = []string{
		"react-router@latest",
		"axios",
		"jwt-decode",
		"dayjs",
		"clsx",
		"tailwind-merge",
		"tailwindcss",
		"@tailwindcss/vite",
		"tw-animate-css",
	}
	devPackages = []string{
		"@types/react",
		"@types/react-dom",
		"@types/jwt-decode",
		"typescript",
	}
)

// RuntimePackages returns the runtime dependencies installed for t.
func RuntimePackages(t project.Type) []string {
	pkgs := slices.Clone(runtimePackages)
	if t.IsTelegram() {
		pkgs = append(pkgs, TelegramSDK)
	}
	return pkgs
}

// DevPackages returns the development-only dependencies.
func DevPackages() []string {
	return slices.Clone(devPackages)
}

// CleanupTargets lists generator leftovers removed after templating.
func CleanupTargets() []string {
	return []string{
		"src/App.css",
		"public/vite.svg",
		"src/assets/react.svg",
	}
}

// PrunedDirs lists directories removed after cleanup, but only when empty.
func PrunedDirs() []string {
	return []string{"src/assets"}
}

package templates

import "fmt"

// Builder describes the Docker build stage for one package manager.
type Builder struct {
	Image     string // base image of the build stage
	Manifests string // files copied before installing, relative to the context
	Install   string
	Build     string
}

var builders = map[string]Builder{
	"npm": {
		Image:     "node:20-alpine",
		Manifests: "package*.json",
		Install:   "npm ci",
		Build:     "npm run build",
	},
	"pnpm": {
		Image:     "node:20-alpine",
		Manifests: "package.json pnpm-lock.yaml*",
		Install:   "corepack enable && pnpm install --frozen-lockfile",
		Build:     "pnpm run build",
	},
	"yarn": {
		Image:     "node:20-alpine",
		Manifests: "package.json yarn.lock*",
		Install:   "corepack enable && yarn install --frozen-lockfile",
		Build:     "yarn build",
	},
	"bun": {
		Image:     "oven/bun:1-alpine",
		Manifests: "package.json bun.lock*",
		Install:   "bun install --frozen-lockfile",
		Build:     "bun run build",
	},
}

// BuilderFor returns the Docker build stage for package manager pm.
func BuilderFor(pm string) (Builder, error) {
	b, ok := builders[pm]
	if !ok {
		return Builder{}, fmt.Errorf("unsupported package manager %q for the Docker build", pm)
	}
	return b, nil
}

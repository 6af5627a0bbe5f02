// Package cli defines the Cobra command tree for the frontstrap CLI. The root
// command scaffolds a project; doctor, config and version are registered as
// subcommands. Commands only handle flag parsing, I/O formatting and wiring;
// the work happens in the scaffold, prereq and config packages.
package cli

// Package prereq verifies that the external tools a scaffold run depends on
// are installed. Each tool is asked for its version; a missing binary, a
// failing version query or a version below the configured minimum stops the
// run before anything is written to disk.
package prereq

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/frontstrap/frontstrap/internal/runner"
	"github.com/frontstrap/frontstrap/internal/ui"
)

// Requirement names a binary and the minimum version it must report.
type Requirement struct {
	Name       string
	MinVersion string // empty disables the version comparison
}

// Result is the outcome of a single successful check.
type Result struct {
	Name    string
	Version string
}

// MissingError reports a prerequisite that is absent, broken or too old.
type MissingError struct {
	Name   string
	Reason string
	Err    error
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("prerequisite %s %s", e.Name, e.Reason)
}

func (e *MissingError) Unwrap() error { return e.Err }

// Defaults returns the runtime and package-manager requirements. The
// configured minimums are node and npm version floors, so each only applies
// when that tool is the one being checked; bun, pnpm or yarn report their own
// version scheme and are only required to answer.
func Defaults(runtimeBin, packageManager, minNode, minNPM string) []Requirement {
	floors := map[string]string{
		"node": minNode,
		"npm":  minNPM,
	}
	return []Requirement{
		{Name: runtimeBin, MinVersion: floors[runtimeBin]},
		{Name: packageManager, MinVersion: floors[packageManager]},
	}
}

// Check runs "<name> --version" for each requirement in order and stops at
// the first failure. Progress is reported through p.
func Check(ctx context.Context, r runner.Runner, p *ui.Printer, reqs []Requirement) ([]Result, error) {
	p.Step("Checking prerequisites")

	results := make([]Result, 0, len(reqs))
	for _, req := range reqs {
		res, err := checkOne(ctx, r, p, req)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func checkOne(ctx context.Context, r runner.Runner, p *ui.Printer, req Requirement) (Result, error) {
	out, err := r.Run(ctx, runner.Command{Name: req.Name, Args: []string{"--version"}})
	if err != nil {
		p.Miss("%s is not installed or not working", req.Name)
		p.Detail("%v", err)
		return Result{}, &MissingError{Name: req.Name, Reason: "is not installed or failed to report its version", Err: err}
	}

	reported := firstLine(out.Stdout)
	if req.MinVersion == "" {
		p.OK("%s %s", req.Name, reported)
		return Result{Name: req.Name, Version: reported}, nil
	}

	ok, err := AtLeast(reported, req.MinVersion)
	if err != nil {
		// An unparseable version string is not fatal; the tool still answered.
		p.Warn("%s reported %q, cannot compare with minimum %s", req.Name, reported, req.MinVersion)
		return Result{Name: req.Name, Version: reported}, nil
	}
	if !ok {
		p.Fail("%s %s is older than the required %s", req.Name, reported, req.MinVersion)
		return Result{}, &MissingError{
			Name:   req.Name,
			Reason: fmt.Sprintf("version %s is older than the required %s", reported, req.MinVersion),
		}
	}

	p.OK("%s %s", req.Name, reported)
	return Result{Name: req.Name, Version: reported}, nil
}

// AtLeast reports whether version >= minimum. A leading "v" is tolerated on both.
func AtLeast(version, minimum string) (bool, error) {
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	m, err := parseSemver(minimum)
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	return v.Compare(m) >= 0, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

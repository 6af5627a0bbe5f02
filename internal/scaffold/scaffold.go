package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/frontstrap/frontstrap/internal/config"
	"github.com/frontstrap/frontstrap/internal/manifest"
	"github.com/frontstrap/frontstrap/internal/prereq"
	"github.com/frontstrap/frontstrap/internal/project"
	"github.com/frontstrap/frontstrap/internal/runner"
	"github.com/frontstrap/frontstrap/internal/templates"
	"github.com/frontstrap/frontstrap/internal/ui"
)

// ErrGeneratorFailed is returned when the generator exits cleanly but leaves
// no package.json behind.
var ErrGeneratorFailed = errors.New("project generator did not create " + manifest.FileName)

// Scaffolder runs the scaffold pipeline. The zero value is not usable; build
// one with New.
type Scaffolder struct {
	runner   runner.Runner
	printer  *ui.Printer
	settings config.Settings
	logger   *slog.Logger
}

// Result holds the outcome of a scaffold run.
type Result struct {
	ProjectDir string
	Files      []string // template files written, relative to ProjectDir
	Removed    []string // generator leftovers deleted
	Warnings   []string
}

// New creates a Scaffolder. A nil logger falls back to slog.Default().
func New(r runner.Runner, p *ui.Printer, s config.Settings, logger *slog.Logger) *Scaffolder {
	if logger == nil {
		logger = slog.Default()
	}
	if p == nil {
		p = ui.NewPrinter(nil)
	}
	if s.PackageManager == "" {
		s.PackageManager = config.DefaultPackageManager
	}
	if s.Runtime == "" {
		s.Runtime = config.DefaultRuntime
	}
	if s.ViteTemplate == "" {
		s.ViteTemplate = config.DefaultViteTemplate
	}
	return &Scaffolder{runner: r, printer: p, settings: s, logger: logger}
}

// Run scaffolds the project described by opts. The target directory must not
// exist; once Run has created it, any failure (or panic) removes it again
// before returning.
func (s *Scaffolder) Run(ctx context.Context, opts project.Options) (result *Result, err error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	dir := opts.Dir()
	if err := project.EnsureAbsent(dir); err != nil {
		return nil, err
	}
	if err := s.checkPrerequisites(ctx); err != nil {
		return nil, err
	}

	if err := os.Mkdir(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			s.rollback(dir)
			panic(r)
		}
		if err != nil {
			s.rollback(dir)
		}
	}()

	if err := s.generate(ctx, opts, dir); err != nil {
		return nil, err
	}
	if err := s.install(ctx, opts.Type, dir); err != nil {
		return nil, err
	}

	result = &Result{ProjectDir: dir}

	files, err := s.materialize(opts, dir)
	if err != nil {
		return nil, err
	}
	result.Files = files

	result.Removed, result.Warnings = s.cleanup(dir, CleanupTargets(), PrunedDirs())

	issues, err := s.patchManifest(dir)
	if err != nil {
		return nil, err
	}
	result.Warnings = append(result.Warnings, issues...)

	return result, nil
}

func (s *Scaffolder) checkPrerequisites(ctx context.Context) error {
	reqs := prereq.Defaults(s.settings.Runtime, s.settings.PackageManager, s.settings.MinNodeVersion, s.settings.MinNPMVersion)
	if _, err := prereq.Check(ctx, s.runner, s.printer, reqs); err != nil {
		return err
	}
	return nil
}

func (s *Scaffolder) generate(ctx context.Context, opts project.Options, dir string) error {
	s.printer.Step("Generating %s project %s", opts.Type, opts.Name)

	cmd := createCommand(s.settings.PackageManager, s.settings.ViteTemplate, dir)
	if _, err := s.runner.Run(ctx, cmd); err != nil {
		s.printer.Fail("%s", cmd)
		s.printer.Detail("%v", err)
		return fmt.Errorf("generating project: %w", err)
	}

	marker := filepath.Join(dir, manifest.FileName)
	if _, err := os.Stat(marker); err != nil {
		s.printer.Fail("%s not found after generation", marker)
		return fmt.Errorf("%w in %s", ErrGeneratorFailed, dir)
	}
	s.printer.OK("created %s", dir)
	return nil
}

func (s *Scaffolder) install(ctx context.Context, t project.Type, dir string) error {
	s.printer.Step("Installing dependencies")

	pm := s.settings.PackageManager
	steps := []struct {
		label string
		cmd   runner.Command
	}{
		{"base dependencies", installCommand(pm, dir)},
		{"runtime packages", addCommand(pm, dir, false, RuntimePackages(t))},
		{"development packages", addCommand(pm, dir, true, DevPackages())},
	}

	for _, step := range steps {
		if _, err := s.runner.Run(ctx, step.cmd); err != nil {
			s.printer.Fail("%s (%s)", step.label, step.cmd)
			s.printer.Detail("%v", err)
			return fmt.Errorf("installing %s: %w", step.label, err)
		}
		s.printer.OK("%s", step.label)
	}
	return nil
}

func (s *Scaffolder) materialize(opts project.Options, dir string) ([]string, error) {
	s.printer.Step("Writing template files")

	data := templates.NewData(opts.Name, opts.Type)
	data.PackageManager = s.settings.PackageManager
	if s.settings.APIBaseURL != "" {
		data.APIBaseURL = s.settings.APIBaseURL
	}

	files, err := templates.Render(opts.Type, data)
	if err != nil {
		return nil, fmt.Errorf("rendering templates: %w", err)
	}
	if err := templates.Write(dir, files); err != nil {
		return nil, err
	}

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
		s.printer.OK("%s", f.Path)
	}
	return paths, nil
}

// cleanup deletes generator leftovers, then the directories in pruned that
// ended up empty. Absent targets are skipped silently and failures only
// produce warnings; cleanup never fails the run.
func (s *Scaffolder) cleanup(dir string, targets, pruned []string) (removed, warnings []string) {
	s.printer.Step("Removing generator leftovers")

	remove := func(rel string) {
		if err := os.Remove(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			msg := fmt.Sprintf("could not remove %s: %v", rel, err)
			s.printer.Warn("%s", msg)
			warnings = append(warnings, msg)
			return
		}
		s.printer.OK("removed %s", rel)
		removed = append(removed, rel)
	}

	for _, rel := range targets {
		if _, err := os.Lstat(filepath.Join(dir, filepath.FromSlash(rel))); errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("cleanup target absent", "path", rel)
			continue
		}
		remove(rel)
	}

	for _, rel := range pruned {
		entries, err := os.ReadDir(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil || len(entries) > 0 {
			s.logger.Debug("keeping directory", "path", rel, "entries", len(entries), "err", err)
			continue
		}
		remove(rel)
	}

	s.printer.Info("removed %d generator files", len(removed))
	return removed, warnings
}

// patchManifest rewrites the scripts in package.json. Schema issues in the
// result come back as warning strings.
func (s *Scaffolder) patchManifest(dir string) ([]string, error) {
	s.printer.Step("Patching %s", manifest.FileName)

	result, err := manifest.Patch(filepath.Join(dir, manifest.FileName), manifest.DefaultScripts)
	if err != nil {
		return nil, fmt.Errorf("patching manifest: %w", err)
	}

	names := make([]string, len(manifest.DefaultScripts))
	for i, sc := range manifest.DefaultScripts {
		names[i] = sc.Name
	}
	s.printer.OK("scripts %s updated", strings.Join(names, ", "))

	var warnings []string
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		s.printer.Warn("%s: %s", manifest.FileName, msg)
		warnings = append(warnings, manifest.FileName+": "+msg)
	}
	return warnings, nil
}

func (s *Scaffolder) rollback(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		s.printer.Warn("could not remove partial project %s: %v", dir, err)
		return
	}
	s.logger.Debug("rolled back partial project", "dir", dir)
}

// Package project defines the inputs of a scaffold run: the project name, the
// project type and the directory the project is generated into.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Type selects which template variants and extra packages a project gets.
type Type string

// Supported project types.
const (
	TypeWeb      Type = "web"
	TypeTelegram Type = "telegram"
)

// Types lists the accepted project types in display order.
var Types = []Type{TypeWeb, TypeTelegram}

// ErrAlreadyExists is returned when the target project directory is already present.
var ErrAlreadyExists = errors.New("already exists")

// npm package names are lowercase and URL-safe; the project name doubles as one.
var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Options describes a single scaffold run.
type Options struct {
	Name      string
	Type      Type
	ParentDir string // defaults to "."
}

// ParseType converts a CLI argument into a Type.
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid project type %q: must be %q or %q", s, TypeWeb, TypeTelegram)
}

// IsTelegram reports whether the project embeds the Telegram Mini App SDK.
func (t Type) IsTelegram() bool {
	return t == TypeTelegram
}

// ValidateName checks that name is usable both as a directory and as an npm package name.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("project name must not be empty")
	}
	if len(name) > 214 {
		return fmt.Errorf("invalid project name %q: longer than 214 characters", name)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [a-z0-9][a-z0-9._-]*", name)
	}
	return nil
}

// Validate checks name and type.
func (o Options) Validate() error {
	if err := ValidateName(o.Name); err != nil {
		return err
	}
	if _, err := ParseType(string(o.Type)); err != nil {
		return err
	}
	return nil
}

// Parent returns the directory the generator runs in.
func (o Options) Parent() string {
	if o.ParentDir == "" {
		return "."
	}
	return o.ParentDir
}

// Dir returns the path of the project directory.
func (o Options) Dir() string {
	return filepath.Join(o.Parent(), o.Name)
}

// EnsureAbsent returns ErrAlreadyExists if anything exists at dir.
func EnsureAbsent(dir string) error {
	_, err := os.Lstat(dir)
	if err == nil {
		return fmt.Errorf("directory %s %w", dir, ErrAlreadyExists)
	}
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("checking %s: %w", dir, err)
}

// Package templates holds the frontend source files written over a freshly
// generated Vite project. Files live in an embedded tree with a common layer
// and one overlay per project type; the overlay wins when both provide the
// same path.
//
// Files ending in .tmpl are rendered with text/template using "[[" and "]]"
// as delimiters, so JSX and CSS braces pass through untouched. Everything else
// is copied verbatim.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/frontstrap/frontstrap/internal/project"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed all:files
var templateFS embed.FS

const (
	rootDir     = "files"
	commonLayer = "common"
	tmplSuffix  = ".tmpl"
)

// Data holds the variables available to .tmpl files.
type Data struct {
	Name           string // e.g. "coffee-shop"
	Type           project.Type
	Title          string // e.g. "Coffee Shop"
	PackageManager string
	APIBaseURL     string // baseURL of the generated axios client
	Builder        Builder
}

// Defaults used by NewData.
const (
	DefaultPackageManager = "npm"
	DefaultAPIBaseURL     = "/api"
)

// File is a rendered template ready to be written.
type File struct {
	Path    string // slash-separated, relative to the project root
	Content []byte
}

// NewData derives template variables from the project name and type. The
// package manager and API base URL start at their defaults; Render resolves
// the Docker builder from the package manager.
func NewData(name string, t project.Type) Data {
	return Data{
		Name:           name,
		Type:           t,
		Title:          titleFromName(name),
		PackageManager: DefaultPackageManager,
		APIBaseURL:     DefaultAPIBaseURL,
	}
}

// Paths lists the relative paths written for project type t, sorted.
func Paths(t project.Type) ([]string, error) {
	sources, err := collect(t)
	if err != nil {
		return nil, err
	}
	return sortedKeys(sources), nil
}

// Render produces every file for project type t.
func Render(t project.Type, data Data) ([]File, error) {
	sources, err := collect(t)
	if err != nil {
		return nil, err
	}
	if data.PackageManager == "" {
		data.PackageManager = DefaultPackageManager
	}
	if data.Builder, err = BuilderFor(data.PackageManager); err != nil {
		return nil, err
	}

	files := make([]File, 0, len(sources))
	for _, rel := range sortedKeys(sources) {
		src := sources[rel]
		raw, err := fs.ReadFile(templateFS, src)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", src, err)
		}

		content := raw
		if strings.HasSuffix(src, tmplSuffix) {
			content, err = execute(src, raw, data)
			if err != nil {
				return nil, err
			}
		}
		files = append(files, File{Path: rel, Content: content})
	}
	return files, nil
}

// Write stores files under dir, creating parent directories and overwriting
// whatever the generator left at the same paths.
func Write(dir string, files []File) error {
	for _, f := range files {
		dest := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(dest, f.Content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}
	}
	return nil
}

// collect maps output paths to embedded source paths, applying the type
// overlay on top of the common layer.
func collect(t project.Type) (map[string]string, error) {
	if _, err := project.ParseType(string(t)); err != nil {
		return nil, err
	}

	sources := make(map[string]string)
	for _, layer := range []string{commonLayer, string(t)} {
		base := path.Join(rootDir, layer)
		err := fs.WalkDir(templateFS, base, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel := strings.TrimPrefix(p, base+"/")
			sources[strings.TrimSuffix(rel, tmplSuffix)] = p
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("template layer %q: %w", layer, err)
		}
	}
	return sources, nil
}

func execute(name string, raw []byte, data Data) ([]byte, error) {
	tmpl, err := template.New(path.Base(name)).
		Delims("[[", "]]").
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// titleFromName turns "coffee-shop" into "Coffee Shop".
func titleFromName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

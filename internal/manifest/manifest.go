package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// FileName is the manifest the generator writes at the project root.
const FileName = "package.json"

const scriptsKey = "scripts"

// Script is a named entry of the manifest's "scripts" object.
type Script struct {
	Name    string
	Command string
}

// DefaultScripts are the two entries every scaffolded project gets: a plain
// "tsc" type check before the build and a fixed preview port.
var DefaultScripts = []Script{
	{Name: "build", Command: "tsc && vite build"},
	{Name: "preview", Command: "vite preview --port 4173"},
}

// Manifest is a loaded package.json.
type Manifest struct {
	root object
}

// Parse decodes manifest bytes.
func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := json.Unmarshal(data, &m.root); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return m, nil
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Name returns the package name, or "" when absent or not a string.
func (m *Manifest) Name() string {
	raw, ok := m.root.Get("name")
	if !ok {
		return ""
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return ""
	}
	return name
}

// Scripts returns the scripts object as a map. Missing or malformed scripts
// yield an empty map.
func (m *Manifest) Scripts() map[string]string {
	scripts := map[string]string{}
	raw, ok := m.root.Get(scriptsKey)
	if !ok {
		return scripts
	}
	_ = json.Unmarshal(raw, &scripts)
	return scripts
}

// SetScripts overwrites the given script entries, leaving other scripts and
// their order untouched. A missing or non-object "scripts" value is replaced
// by a fresh object.
func (m *Manifest) SetScripts(scripts []Script) error {
	var obj object
	if raw, ok := m.root.Get(scriptsKey); ok {
		if err := json.Unmarshal(raw, &obj); err != nil {
			obj = object{}
		}
	}

	for _, s := range scripts {
		value, err := marshalNoEscape(s.Command)
		if err != nil {
			return fmt.Errorf("encoding script %q: %w", s.Name, err)
		}
		obj.Set(s.Name, value)
	}

	encoded, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding scripts: %w", err)
	}
	m.root.Set(scriptsKey, encoded)
	return nil
}

// Bytes renders the manifest with two-space indentation and a trailing newline.
func (m *Manifest) Bytes() ([]byte, error) {
	compact, err := m.root.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("formatting %s: %w", FileName, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Save writes the manifest to path.
func (m *Manifest) Save(path string) error {
	data, err := m.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Patch loads the manifest at path, overwrites the given scripts, validates
// the result and writes it back. Validation issues are returned rather than
// treated as errors so the caller can report them as warnings.
func Patch(path string, scripts []Script) (*ValidationResult, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := m.SetScripts(scripts); err != nil {
		return nil, err
	}

	data, err := m.Bytes()
	if err != nil {
		return nil, err
	}
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}

	if err := m.Save(path); err != nil {
		return nil, err
	}
	return result, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

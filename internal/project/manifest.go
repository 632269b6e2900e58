// Package project loads and validates the easy.yaml project manifest used by
// the CLI to locate the entry source file and configure the build.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the manifest file looked up in a project directory.
const FileName = "easy.yaml"

// Manifest describes one Easy project.
type Manifest struct {
	Name    string `yaml:"name"`
	Entry   string `yaml:"entry"`             // main source file, .easy extension
	Out     string `yaml:"out,omitempty"`     // build artifact directory
	Profile string `yaml:"profile,omitempty"` // builtin profile: "full" or "core"
	Python  string `yaml:"python,omitempty"`  // interpreter used by 'easyc run'

	// Path is the directory the manifest was loaded from; not serialized.
	Path string `yaml:"-"`
}

// Default returns a manifest with the standard layout for a new project.
func Default(name string) *Manifest {
	return &Manifest{
		Name:    name,
		Entry:   "main.easy",
		Out:     "out",
		Profile: "full",
		Python:  "python3",
	}
}

// Load reads and validates dir/easy.yaml, filling defaults for omitted fields.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	m.Path = dir
	m.applyDefaults()

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	if m.Entry == "" {
		m.Entry = "main.easy"
	}
	if m.Out == "" {
		m.Out = "out"
	}
	if m.Profile == "" {
		m.Profile = "full"
	}
	if m.Python == "" {
		m.Python = "python3"
	}
}

// Validate checks the manifest fields without touching the filesystem.
func (m *Manifest) Validate() error {
	var issues []string
	if m.Name == "" {
		issues = append(issues, "missing 'name'")
	}
	if filepath.Ext(m.Entry) != ".easy" {
		issues = append(issues, fmt.Sprintf("entry %q must have .easy extension", m.Entry))
	}
	switch m.Profile {
	case "full", "core":
	default:
		issues = append(issues, fmt.Sprintf("unknown profile %q (want \"full\" or \"core\")", m.Profile))
	}
	if len(issues) > 0 {
		return fmt.Errorf("invalid manifest: %s", strings.Join(issues, "; "))
	}
	return nil
}

// EntryPath returns the absolute-ish path of the entry source file.
func (m *Manifest) EntryPath() string {
	return filepath.Join(m.Path, m.Entry)
}

// OutPath returns the build artifact directory.
func (m *Manifest) OutPath() string {
	return filepath.Join(m.Path, m.Out)
}

// Save writes the manifest to dir/easy.yaml.
func (m *Manifest) Save(dir string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, FileName), data, 0o644)
}

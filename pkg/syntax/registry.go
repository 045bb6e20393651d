package syntax

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is a named syntax template shipped in a registry document.
type Preset struct {
	Name       string   `json:"name" yaml:"name"`
	Properties Template `json:"properties" yaml:"properties"`

	// Wrapper is an optional pongo2 template framing the generated
	// conditional body, e.g. with a function signature. It receives the
	// rendered body as "body" and the preset name as "language".
	Wrapper string `json:"wrapper,omitempty" yaml:"wrapper,omitempty"`
}

// Registry holds language presets in the order their documents declare them.
// It is safe for concurrent readers when treated as immutable after loading.
type Registry struct {
	presets []Preset
}

// NewRegistry builds a registry from in-memory presets, preserving order.
func NewRegistry(presets ...Preset) *Registry {
	return &Registry{presets: append([]Preset(nil), presets...)}
}

type registryDocument struct {
	Languages []Preset `json:"languages" yaml:"languages"`
}

// LoadFS walks the provided filesystem and parses every JSON/YAML preset
// document it finds. Records are appended in encounter order; duplicate names
// are kept, with the earliest record winning lookups.
func LoadFS(fsys fs.FS) (*Registry, error) {
	registry := &Registry{}
	if fsys == nil {
		return registry, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPresetFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("syntax: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for _, preset := range doc.Languages {
			if strings.TrimSpace(preset.Name) == "" {
				return fmt.Errorf("syntax: file %s declares a preset with no name", path)
			}
			registry.presets = append(registry.presets, preset)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return registry, nil
}

func isPresetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func parseDocument(data []byte, path string) (registryDocument, error) {
	var doc registryDocument
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return doc, fmt.Errorf("syntax: parse %s: %w", path, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("syntax: parse %s: %w", path, err)
	}
	return doc, nil
}

// List returns the preset names in registry order, duplicates included.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.presets))
	for _, preset := range r.presets {
		names = append(names, preset.Name)
	}
	return names
}

// Get returns the first preset whose name matches exactly. A miss returns a
// *ConfigurationError carrying the requested name.
func (r *Registry) Get(name string) (Preset, error) {
	for _, preset := range r.presets {
		if preset.Name == name {
			return preset, nil
		}
	}
	return Preset{}, &ConfigurationError{Subject: "language preset", Name: name}
}

// Has reports whether any preset carries the given name.
func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

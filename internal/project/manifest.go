// Package project locates translation project workspaces on disk: the YAML
// manifest describing the project and the generated artifacts under it.
package project

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ManifestFilename is the expected name of the manifest at a project root.
const ManifestFilename = "project.yaml"

// Manifest describes one translation project.
type Manifest struct {
	// Name is the human readable project name.
	Name string `yaml:"name"`
	// ID is the stable project identifier carried into every artifact.
	ID string `yaml:"id"`
	// User is the default operator recorded in generated artifacts.
	User string `yaml:"user,omitempty"`
	// SourceLanguage and TargetLanguage are BCP 47 tags.
	SourceLanguage string `yaml:"sourceLanguage"`
	TargetLanguage string `yaml:"targetLanguage"`
}

// NewManifest builds a manifest with a freshly minted identifier.
func NewManifest(name, sourceLanguage, targetLanguage string) *Manifest {
	return &Manifest{
		Name:           name,
		ID:             uuid.NewString(),
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
	}
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &m, nil
}

// SaveManifest writes a manifest file.
func SaveManifest(path string, m *Manifest) error {
	if err := m.validate(); err != nil {
		return fmt.Errorf("refusing to save invalid manifest: %w", err)
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}

func (m *Manifest) validate() error {
	if m.Name == "" {
		return fmt.Errorf("missing name")
	}
	if m.ID == "" {
		return fmt.Errorf("missing id")
	}
	if m.SourceLanguage == "" {
		return fmt.Errorf("missing sourceLanguage")
	}
	if m.TargetLanguage == "" {
		return fmt.Errorf("missing targetLanguage")
	}
	return nil
}

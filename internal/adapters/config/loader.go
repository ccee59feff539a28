// Package config provides the YAML registry loader for parsnip.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.trai.ch/parsnip/internal/core/domain"
)

// DefaultFilename is the registry file looked up in the working directory.
const DefaultFilename = "parsnip.yaml"

// Loader implements ports.RegistryLoader over a YAML file.
type Loader struct {
	Path string
}

// NewLoader creates a Loader for the registry file at path.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Registryfile represents the structure of the parsnip.yaml file.
type Registryfile struct {
	Version string               `yaml:"version"`
	Parsers map[string]ParserDTO `yaml:"parsers"`
	Tiers   map[string][]string  `yaml:"tiers"`
	Ignore  []string             `yaml:"ignore"`
}

// ParserDTO represents one parser declaration in the configuration.
type ParserDTO struct {
	Source    string   `yaml:"source"`
	Revision  string   `yaml:"revision"`
	Generate  bool     `yaml:"generate"`
	Bootstrap bool     `yaml:"bootstrap"`
	Location  string   `yaml:"location"`
	Files     []string `yaml:"files"`
}

// Load reads the registry file and returns the target registry.
func (l *Loader) Load() (*domain.Registry, error) {
	return Load(l.Path)
}

// Load reads a registry declaration from the given path.
func Load(path string) (*domain.Registry, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read registry file")
	}

	var file Registryfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse registry file")
	}

	reg := domain.NewRegistry()
	for name, dto := range file.Parsers {
		spec := domain.TargetSpec{
			Name:      domain.NewInternedString(name),
			Source:    dto.Source,
			Revision:  dto.Revision,
			Generate:  dto.Generate,
			Bootstrap: dto.Bootstrap,
			Location:  dto.Location,
			Files:     dto.Files,
		}
		if err := reg.AddSpec(spec); err != nil {
			return nil, err
		}
	}

	for tier, members := range file.Tiers {
		interned := make([]domain.InternedString, len(members))
		for i, m := range members {
			interned[i] = domain.NewInternedString(m)
		}
		if err := reg.AddTier(tier, interned); err != nil {
			return nil, err
		}
	}

	for _, name := range file.Ignore {
		reg.Ignore(domain.NewInternedString(name))
	}

	return reg, nil
}

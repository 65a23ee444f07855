package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mre/crux/internal/extract"
)

// Config is the parsed run manifest.
type Config struct {
	// Version of the manifest schema.
	Version string `yaml:"version"`
	// Manifest is the path to the workspace manifest of the library.
	Manifest string `yaml:"manifest"`
	// Lib is the library target name.
	Lib string `yaml:"lib"`
	// Markers override the built-in marker-trait set.
	Markers []Marker `yaml:"markers"`
	// Out is the directory generated bindings are written to.
	Out string `yaml:"out"`
	// Package is the package name for generated Go bindings.
	Package string `yaml:"package"`
}

// Marker is one marker-trait entry of the manifest.
type Marker struct {
	Trait string   `yaml:"trait"`
	Slots []string `yaml:"slots"`
}

// LoadFile loads and parses a YAML run manifest from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.Out == "" {
		cfg.Out = "generated"
	}

	if cfg.Package == "" {
		cfg.Package = "shared_types"
	}
}

// ExtractMarkers converts the manifest's marker entries to extraction
// options. Returns nil when no overrides were given, which selects the
// built-in set.
func (c *Config) ExtractMarkers() []extract.Marker {
	if len(c.Markers) == 0 {
		return nil
	}

	markers := make([]extract.Marker, 0, len(c.Markers))
	for _, m := range c.Markers {
		markers = append(markers, extract.Marker{Trait: m.Trait, Slots: m.Slots})
	}

	return markers
}

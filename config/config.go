// Package config provides schema reference configuration for semschema.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config describes one schema set: the ontology files, the constraint
// shape files, and the hash identifying the exact version in use. It is
// the schema reference consumed by the ontology manager.
type Config struct {
	// Domain is the domain name (e.g., "uht_manufacturing").
	Domain string `yaml:"domain"`

	// Ontology configures the ontology file paths.
	Ontology OntologyConfig `yaml:"ontology"`

	// Shapes configures the constraint-shape file paths.
	Shapes ShapesConfig `yaml:"shapes"`

	// Hash is the precomputed fingerprint of the active schema set.
	Hash string `yaml:"hash"`
}

// OntologyConfig configures the ontology file paths.
type OntologyConfig struct {
	// CorePath is the optional shared core ontology file.
	CorePath string `yaml:"core_path"`
	// DomainPath is the mandatory domain ontology file.
	DomainPath string `yaml:"domain_path"`
}

// ShapesConfig configures the constraint-shape file paths.
type ShapesConfig struct {
	// CorePath is the core shape file.
	CorePath string `yaml:"core_path"`
	// DomainPath is the domain shape file.
	DomainPath string `yaml:"domain_path"`
}

// DefaultConfig returns an empty Config ready to be merged or populated.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks that the configuration is complete enough to build a
// manager from.
func (c *Config) Validate() error {
	if c.Domain == "" {
		return fmt.Errorf("domain is required")
	}
	if c.Ontology.DomainPath == "" {
		return fmt.Errorf("ontology.domain_path is required")
	}
	if c.Shapes.CorePath == "" {
		return fmt.Errorf("shapes.core_path is required")
	}
	if c.Shapes.DomainPath == "" {
		return fmt.Errorf("shapes.domain_path is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Domain != "" {
		c.Domain = other.Domain
	}
	if other.Ontology.CorePath != "" {
		c.Ontology.CorePath = other.Ontology.CorePath
	}
	if other.Ontology.DomainPath != "" {
		c.Ontology.DomainPath = other.Ontology.DomainPath
	}
	if other.Shapes.CorePath != "" {
		c.Shapes.CorePath = other.Shapes.CorePath
	}
	if other.Shapes.DomainPath != "" {
		c.Shapes.DomainPath = other.Shapes.DomainPath
	}
	if other.Hash != "" {
		c.Hash = other.Hash
	}
}

// Schema reference accessors consumed by the ontology manager.

// DomainName returns the configured domain name.
func (c *Config) DomainName() string { return c.Domain }

// CoreOntologyPath returns the optional core ontology path ("" when not
// configured).
func (c *Config) CoreOntologyPath() string { return c.Ontology.CorePath }

// DomainOntologyPath returns the mandatory domain ontology path.
func (c *Config) DomainOntologyPath() string { return c.Ontology.DomainPath }

// CoreShapePath returns the core constraint-shape path.
func (c *Config) CoreShapePath() string { return c.Shapes.CorePath }

// DomainShapePath returns the domain constraint-shape path.
func (c *Config) DomainShapePath() string { return c.Shapes.DomainPath }

// OntologyHash returns the fingerprint of the active schema set.
func (c *Config) OntologyHash() string { return c.Hash }

package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/c360studio/semschema/ontology"
)

// ComputeOntologyHash derives the schema set fingerprint: a SHA-256 over
// the ontology and shape files in a fixed order. Every participant
// computing the hash over identical files gets an identical value, which
// is what peer consistency checking compares. The optional core ontology
// is skipped when absent; the remaining files are required.
func (c *Config) ComputeOntologyHash() (string, error) {
	h := sha256.New()

	if c.Ontology.CorePath != "" {
		if content, err := os.ReadFile(c.Ontology.CorePath); err == nil {
			h.Write(content)
		}
	}

	for _, path := range []string{c.Ontology.DomainPath, c.Shapes.CorePath, c.Shapes.DomainPath} {
		if path == "" {
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		h.Write(content)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// FromOntologyPath builds a schema reference for a standalone domain
// ontology file. The file must exist; sibling shape files are assumed by
// convention (<name>-shapes.ttl next to the ontology, core-shapes.ttl in
// the same directory). The domain name defaults to the ontology file's
// base name.
func FromOntologyPath(ontologyPath string) (*Config, error) {
	if _, err := os.Stat(ontologyPath); err != nil {
		if os.IsNotExist(err) {
			return nil, &ontology.NotFoundError{Path: ontologyPath}
		}
		return nil, &ontology.LoadError{Path: ontologyPath, Err: err}
	}

	dir := filepath.Dir(ontologyPath)
	base := strings.TrimSuffix(filepath.Base(ontologyPath), filepath.Ext(ontologyPath))

	cfg := DefaultConfig()
	cfg.Domain = base
	cfg.Ontology.DomainPath = ontologyPath
	cfg.Shapes.CorePath = filepath.Join(dir, "core-shapes.ttl")
	cfg.Shapes.DomainPath = filepath.Join(dir, base+"-shapes.ttl")
	return cfg, nil
}

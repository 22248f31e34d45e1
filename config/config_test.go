package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/c360studio/semschema/ontology"
)

func validConfig(dir string) *Config {
	cfg := DefaultConfig()
	cfg.Domain = "dairy"
	cfg.Ontology.DomainPath = filepath.Join(dir, "dairy.ttl")
	cfg.Shapes.CorePath = filepath.Join(dir, "core-shapes.ttl")
	cfg.Shapes.DomainPath = filepath.Join(dir, "dairy-shapes.ttl")
	return cfg
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	if err := validConfig(dir).Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing domain", func(c *Config) { c.Domain = "" }},
		{"missing domain ontology", func(c *Config) { c.Ontology.DomainPath = "" }},
		{"missing core shapes", func(c *Config) { c.Shapes.CorePath = "" }},
		{"missing domain shapes", func(c *Config) { c.Shapes.DomainPath = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(dir)
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "semschema.yaml")

	cfg := validConfig(dir)
	cfg.Ontology.CorePath = filepath.Join(dir, "core.ttl")
	cfg.Hash = "abc123"

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestMerge(t *testing.T) {
	base := validConfig(t.TempDir())
	base.Hash = "old-hash"

	other := DefaultConfig()
	other.Domain = "pharma"
	other.Hash = "new-hash"

	base.Merge(other)

	if base.Domain != "pharma" {
		t.Errorf("Domain = %q, want %q", base.Domain, "pharma")
	}
	if base.Hash != "new-hash" {
		t.Errorf("Hash = %q, want %q", base.Hash, "new-hash")
	}
	if base.Ontology.DomainPath == "" {
		t.Error("merge must keep values the other config leaves empty")
	}

	base.Merge(nil) // no-op
}

func TestComputeOntologyHash(t *testing.T) {
	dir := t.TempDir()
	cfg := validConfig(dir)

	for _, path := range []string{cfg.Ontology.DomainPath, cfg.Shapes.CorePath, cfg.Shapes.DomainPath} {
		if err := os.WriteFile(path, []byte("content of "+filepath.Base(path)), 0644); err != nil {
			t.Fatal(err)
		}
	}

	first, err := cfg.ComputeOntologyHash()
	if err != nil {
		t.Fatalf("ComputeOntologyHash: %v", err)
	}
	second, err := cfg.ComputeOntologyHash()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("hash not deterministic: %q != %q", first, second)
	}

	if err := os.WriteFile(cfg.Ontology.DomainPath, []byte("changed"), 0644); err != nil {
		t.Fatal(err)
	}
	changed, err := cfg.ComputeOntologyHash()
	if err != nil {
		t.Fatal(err)
	}
	if changed == first {
		t.Error("hash must change when file content changes")
	}
}

func TestComputeOntologyHashMissingFile(t *testing.T) {
	cfg := validConfig(t.TempDir())
	if _, err := cfg.ComputeOntologyHash(); err == nil {
		t.Error("expected error for missing required files")
	}
}

func TestFromOntologyPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dairy.owl")
	if err := os.WriteFile(path, []byte("@prefix ex: <http://example.org/> .\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := FromOntologyPath(path)
	if err != nil {
		t.Fatalf("FromOntologyPath: %v", err)
	}
	if cfg.Domain != "dairy" {
		t.Errorf("Domain = %q, want %q", cfg.Domain, "dairy")
	}
	if cfg.Ontology.DomainPath != path {
		t.Errorf("DomainPath = %q, want %q", cfg.Ontology.DomainPath, path)
	}
}

func TestFromOntologyPathNotFound(t *testing.T) {
	missing := "nonexistent/ontology.owl"

	_, err := FromOntologyPath(missing)
	if err == nil {
		t.Fatal("expected error")
	}

	var notFound *ontology.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *ontology.NotFoundError, got %T", err)
	}
	if notFound.Path != missing {
		t.Errorf("Path = %q, want %q", notFound.Path, missing)
	}
}

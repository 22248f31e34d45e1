package ontology

import (
	"fmt"
	"os"
	"strings"
)

// Annotation markers recognized by the domain config scan. These form a
// lightweight comment convention layered on top of the formal ontology
// syntax, so they stay independent of any RDF parser.
const (
	transactionTypeMarker = "# Transaction type:"
	validationRuleMarker  = "# Validation rule:"
	descriptionMarker     = "rdfs:comment"
)

// standardTransactionTypes is the compiled-in seed of transaction types
// every domain supports regardless of ontology content.
var standardTransactionTypes = []string{
	"Production",
	"Processing",
	"Transport",
	"Quality",
	"Transfer",
	"Environmental",
	"Compliance",
	"Governance",
}

// DomainConfig holds the derived configuration for one domain: its name,
// description, supported transaction types, and validation rules.
type DomainConfig struct {
	// DomainName identifies the domain (e.g. "uht_manufacturing").
	DomainName string

	// Description is free text describing the domain.
	Description string

	// SupportedTransactionTypes lists transaction types in first-insertion
	// order with no duplicates.
	SupportedTransactionTypes []string

	// ValidationRules maps rule names to rule values.
	ValidationRules map[string]string
}

// NewDomainConfig creates a domain configuration with no transaction types
// or validation rules.
func NewDomainConfig(domainName, description string) *DomainConfig {
	return &DomainConfig{
		DomainName:      domainName,
		Description:     description,
		ValidationRules: make(map[string]string),
	}
}

// AddTransactionType registers a supported transaction type. Duplicate
// additions are no-ops; insertion order is preserved.
func (c *DomainConfig) AddTransactionType(transactionType string) {
	for _, existing := range c.SupportedTransactionTypes {
		if existing == transactionType {
			return
		}
	}
	c.SupportedTransactionTypes = append(c.SupportedTransactionTypes, transactionType)
}

// AddValidationRule registers a validation rule, replacing any prior value
// for the same rule name.
func (c *DomainConfig) AddValidationRule(ruleName, ruleValue string) {
	c.ValidationRules[ruleName] = ruleValue
}

// SupportsTransactionType reports whether the transaction type was
// previously added. Matching is exact and case-sensitive.
func (c *DomainConfig) SupportsTransactionType(transactionType string) bool {
	for _, existing := range c.SupportedTransactionTypes {
		if existing == transactionType {
			return true
		}
	}
	return false
}

// clone returns an independent copy of the domain configuration.
func (c *DomainConfig) clone() *DomainConfig {
	out := NewDomainConfig(c.DomainName, c.Description)
	out.SupportedTransactionTypes = append([]string(nil), c.SupportedTransactionTypes...)
	for k, v := range c.ValidationRules {
		out.ValidationRules[k] = v
	}
	return out
}

// loadDomainConfig derives a domain configuration from the schema
// reference. The standard transaction types are always seeded; the domain
// ontology file, when readable, contributes annotations on top. A missing
// or malformed ontology file never fails the load.
func loadDomainConfig(ref SchemaReference) *DomainConfig {
	domainName := ref.DomainName()
	cfg := NewDomainConfig(domainName, fmt.Sprintf("Domain configuration for %s", domainName))

	for _, txType := range standardTransactionTypes {
		cfg.AddTransactionType(txType)
	}

	if content, err := os.ReadFile(ref.DomainOntologyPath()); err == nil {
		scanDomainAnnotations(cfg, string(content))
	}

	return cfg
}

// scanDomainAnnotations extracts domain information from ontology text.
// The scan is textual on purpose: it must tolerate any input without
// depending on the formal RDF parser.
func scanDomainAnnotations(cfg *DomainConfig, content string) {
	// The first quoted string after the first rdfs:comment marker replaces
	// the default description.
	if idx := strings.Index(content, descriptionMarker); idx >= 0 {
		rest := content[idx+len(descriptionMarker):]
		if open := strings.IndexByte(rest, '"'); open >= 0 {
			quoted := rest[open+1:]
			if end := strings.IndexByte(quoted, '"'); end >= 0 {
				cfg.Description = quoted[:end]
			}
		}
	}

	for _, line := range strings.Split(content, "\n") {
		if _, after, ok := strings.Cut(line, transactionTypeMarker); ok {
			if txType := strings.TrimSpace(after); txType != "" {
				cfg.AddTransactionType(txType)
			}
		}

		if _, after, ok := strings.Cut(line, validationRuleMarker); ok {
			// Lines without an "=" are skipped silently.
			if name, value, ok := strings.Cut(after, "="); ok {
				cfg.AddValidationRule(strings.TrimSpace(name), strings.TrimSpace(value))
			}
		}
	}
}

// Package ontology manages the domain-specific semantic schema shared by
// network participants. It derives a domain configuration from ontology
// annotations, detects RDF serialization formats, verifies schema version
// consistency against peers, and collects best-effort usage statistics
// over the loaded schema.
//
// The RDF triple store and the constraint-shape validator are external
// collaborators consumed through the Store and Validator interfaces; this
// package never parses full RDF grammar or evaluates shapes itself.
//
// A Manager is single-threaded by design: it holds no locks, and callers
// must serialize access to one instance (see Watcher for the reload case).
package ontology

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/c360studio/semschema/metric"
)

// Options configures manager construction. NewStore and NewValidator are
// required; Logger and Metrics are optional.
type Options struct {
	// NewStore constructs the fresh store used at construction, reload,
	// and clone.
	NewStore StoreFactory

	// NewValidator constructs the shape validator from the schema
	// reference's shape paths and hash.
	NewValidator ValidatorFactory

	// Logger receives operational logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics receives operation counters. Nil disables instrumentation.
	Metrics *metric.Metrics
}

// Manager owns the loaded ontology store and validator for one domain and
// exposes validation, querying, consistency checking, and statistics over
// them. The store and validator are exclusively owned: cloning a manager
// re-derives them from the schema reference instead of aliasing.
type Manager struct {
	id           string
	ref          SchemaReference
	domainConfig *DomainConfig
	validator    Validator
	store        Store
	opts         Options
	logger       *slog.Logger
}

// NewManager builds a manager from a schema reference. Construction is
// atomic: it derives the domain configuration, builds the validator from
// the shape paths and hash, and loads the classified ontology files into
// a fresh store. Any sub-step failure aborts the whole operation.
func NewManager(ref SchemaReference, opts Options) (*Manager, error) {
	if ref == nil {
		return nil, fmt.Errorf("schema reference is required")
	}
	if opts.NewStore == nil {
		return nil, fmt.Errorf("store factory is required")
	}
	if opts.NewValidator == nil {
		return nil, fmt.Errorf("validator factory is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	domainConfig, validator, store, err := derive(ref, opts)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		id:           uuid.NewString(),
		ref:          ref,
		domainConfig: domainConfig,
		validator:    validator,
		store:        store,
		opts:         opts,
		logger:       logger,
	}

	logger.Debug("ontology manager ready",
		"manager_id", m.id,
		"domain", domainConfig.DomainName,
		"hash", ref.OntologyHash())

	return m, nil
}

// derive builds the full (config, validator, store) triple for a schema
// reference without touching any live manager state.
func derive(ref SchemaReference, opts Options) (*DomainConfig, Validator, Store, error) {
	domainConfig := loadDomainConfig(ref)

	validator, err := opts.NewValidator(ref.CoreShapePath(), ref.DomainShapePath(), ref.OntologyHash())
	if err != nil {
		return nil, nil, nil, &LoadError{Path: "shape validator", Err: err}
	}

	store, err := loadStore(ref, opts.NewStore)
	if err != nil {
		return nil, nil, nil, err
	}

	return domainConfig, validator, store, nil
}

// loadStore creates a fresh store and ingests the ontology files into it,
// classifying each file's content before ingestion. The core ontology is
// optional and skipped silently when absent; the domain ontology is
// required.
func loadStore(ref SchemaReference, newStore StoreFactory) (Store, error) {
	store, err := newStore()
	if err != nil {
		return nil, &LoadError{Path: "store creation", Err: err}
	}

	if corePath := ref.CoreOntologyPath(); corePath != "" {
		if _, err := os.Stat(corePath); err == nil {
			if err := ingestFile(store, corePath); err != nil {
				return nil, err
			}
		}
	}

	domainPath := ref.DomainOntologyPath()
	if _, err := os.Stat(domainPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: domainPath}
		}
		return nil, &LoadError{Path: domainPath, Err: err}
	}
	if err := ingestFile(store, domainPath); err != nil {
		return nil, err
	}

	return store, nil
}

// ingestFile reads one ontology file, detects its serialization format,
// and loads it into the store.
func ingestFile(store Store, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	format := DetectFormat(string(content), path)
	if err := store.LoadText(format, content); err != nil {
		return &ParseError{Path: path, Message: err.Error()}
	}
	return nil
}

// Reload re-derives the domain configuration, validator, and store from
// the manager's schema reference and replaces all three. The replacement
// triple is built completely before any of it is committed, so a failure
// partway through leaves the manager on its previous state.
func (m *Manager) Reload() error {
	domainConfig, validator, store, err := derive(m.ref, m.opts)
	if err != nil {
		m.opts.Metrics.ObserveReload(m.domainConfig.DomainName, false)
		return err
	}

	m.domainConfig = domainConfig
	m.validator = validator
	m.store = store

	m.opts.Metrics.ObserveReload(domainConfig.DomainName, true)
	m.logger.Info("ontology reloaded",
		"manager_id", m.id,
		"domain", domainConfig.DomainName,
		"hash", m.ref.OntologyHash())
	return nil
}

// Clone produces an independent manager over the same schema reference.
// The store and validator cannot be shared, so they are re-derived; a
// failed re-derivation is returned as an error rather than degrading to
// an empty store.
func (m *Manager) Clone() (*Manager, error) {
	clone, err := NewManager(m.ref, m.opts)
	if err != nil {
		return nil, fmt.Errorf("clone manager: %w", err)
	}
	m.logger.Debug("ontology manager cloned",
		"manager_id", m.id,
		"clone_id", clone.id)
	return clone, nil
}

// ValidateTransaction checks transaction RDF text against the loaded
// constraint shapes. The manager itself is not modified.
func (m *Manager) ValidateTransaction(rdfText string) (*ValidationReport, error) {
	report, err := m.validator.Validate(rdfText)
	if err != nil {
		m.opts.Metrics.ObserveValidation(m.domainConfig.DomainName, false)
		return nil, &ValidationError{Err: err}
	}
	m.opts.Metrics.ObserveValidation(m.domainConfig.DomainName, report.Conforms)
	return report, nil
}

// QueryOntology executes a structured query against the loaded store and
// serializes the result: one line per solution row, one line per graph
// statement, or "true"/"false" for boolean results. Rows with a single
// binding serialize as the bare value so counts stay machine-readable.
func (m *Manager) QueryOntology(query string) (string, error) {
	result, err := m.store.Query(query)
	if err != nil {
		m.opts.Metrics.ObserveQuery(m.domainConfig.DomainName, false)
		return "", &LoadError{Path: "ontology query", Err: err}
	}
	m.opts.Metrics.ObserveQuery(m.domainConfig.DomainName, true)

	var sb strings.Builder
	switch result.Kind {
	case ResultSolutions:
		for _, solution := range result.Solutions {
			sb.WriteString(formatSolution(solution))
			sb.WriteString("\n")
		}
	case ResultGraph:
		for _, quad := range result.Quads {
			sb.WriteString(formatQuad(quad))
			sb.WriteString("\n")
		}
	case ResultBoolean:
		return fmt.Sprintf("%t", result.Boolean), nil
	default:
		return "", fmt.Errorf("unknown query result kind: %s", result.Kind)
	}
	return sb.String(), nil
}

// formatSolution renders one solution row as a single line.
func formatSolution(solution Solution) string {
	if len(solution) == 1 {
		return solution[0].Value
	}
	parts := make([]string, 0, len(solution))
	for _, b := range solution {
		parts = append(parts, fmt.Sprintf("%s=%s", b.Var, b.Value))
	}
	return strings.Join(parts, " ")
}

// formatQuad renders one graph statement as a single N-Quads style line.
func formatQuad(q Quad) string {
	if q.Graph == "" {
		return fmt.Sprintf("%s %s %s .", q.Subject, q.Predicate, q.Object)
	}
	return fmt.Sprintf("%s %s %s %s .", q.Subject, q.Predicate, q.Object, q.Graph)
}

// CheckOntologyConsistency verifies that a peer participant uses the same
// ontology version as this manager.
func (m *Manager) CheckOntologyConsistency(peerHash string) error {
	err := checkConsistency(m.ref.OntologyHash(), peerHash, m.domainConfig.DomainName)
	m.opts.Metrics.ObserveConsistencyCheck(m.domainConfig.DomainName, err == nil)
	return err
}

// Stats collects best-effort entity counts over the loaded schema.
// Failures in individual counts are absorbed as zero; Stats never fails.
func (m *Manager) Stats() Stats {
	stats := collectStats(m.QueryOntology)
	m.opts.Metrics.SetLoadedEntities(m.domainConfig.DomainName,
		stats.ClassCount, stats.PropertyCount, stats.IndividualCount)
	return stats
}

// Hash returns the ontology hash identifying the active schema version.
func (m *Manager) Hash() string {
	return m.ref.OntologyHash()
}

// DomainName returns the configured domain name.
func (m *Manager) DomainName() string {
	return m.domainConfig.DomainName
}

// SupportedTransactionTypes returns the supported transaction types in
// first-insertion order.
func (m *Manager) SupportedTransactionTypes() []string {
	return append([]string(nil), m.domainConfig.SupportedTransactionTypes...)
}

// DomainConfig returns a copy of the derived domain configuration.
func (m *Manager) DomainConfig() *DomainConfig {
	return m.domainConfig.clone()
}

// Package storage provides the reference in-memory quad store used by
// semschema when no external triple store is wired in. It ingests
// N-Triples and N-Quads (and a prefix-free Turtle subset) and answers the
// fixed structured queries the ontology layer issues. It is deliberately
// not a SPARQL engine: unsupported query shapes return an error.
package storage

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/piprate/json-gold/ld"

	"github.com/c360studio/semschema/ontology"
	"github.com/c360studio/semschema/vocabulary/owl"
)

// rdfTypeTerm is the rdf:type predicate in N-Quads text form.
const rdfTypeTerm = "<" + owl.TypeIRI + ">"

// MemoryStore is an in-memory, de-duplicated quad set. It is owned by
// exactly one manager and carries no internal synchronization.
type MemoryStore struct {
	quads []ontology.Quad
	seen  map[ontology.Quad]bool
}

var _ ontology.Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{seen: make(map[ontology.Quad]bool)}
}

// NewStore is an ontology.StoreFactory producing memory stores.
func NewStore() (ontology.Store, error) {
	return NewMemoryStore(), nil
}

// Len returns the number of distinct statements in the store.
func (s *MemoryStore) Len() int {
	return len(s.quads)
}

// Quads returns the stored statements in insertion order.
func (s *MemoryStore) Quads() []ontology.Quad {
	return append([]ontology.Quad(nil), s.quads...)
}

// LoadText parses data under the given format and adds the statements to
// the store. RDF/XML is not supported by the memory store; wire an
// external store for RDF/XML schema sets.
func (s *MemoryStore) LoadText(format ontology.Format, data []byte) error {
	switch format {
	case ontology.FormatNTriples, ontology.FormatNQuads:
		return s.loadNQuads(string(data))
	case ontology.FormatTurtle:
		return s.loadSimpleTurtle(string(data))
	case ontology.FormatRDFXML:
		return fmt.Errorf("rdfxml is not supported by the memory store")
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// loadNQuads ingests N-Triples or N-Quads text. Comment lines are
// stripped first: the annotation convention puts them in ontology files,
// and the underlying parser only accepts statements.
func (s *MemoryStore) loadNQuads(input string) error {
	var sb strings.Builder
	for _, line := range strings.Split(input, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	dataset, err := ld.ParseNQuads(sb.String())
	if err != nil {
		return fmt.Errorf("parse nquads: %w", err)
	}
	s.addDataset(dataset)
	return nil
}

// loadSimpleTurtle ingests the prefix-free Turtle subset: one statement
// per line with absolute IRIs, plus the "a" type keyword. Prefix and base
// directives are accepted and skipped; prefixed names are not resolved.
func (s *MemoryStore) loadSimpleTurtle(input string) error {
	var sb strings.Builder
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
			strings.HasPrefix(trimmed, "@prefix") || strings.HasPrefix(trimmed, "@base") {
			continue
		}
		// Expand the Turtle type keyword, in predicate position only, so
		// the statement is legal N-Quads.
		if i := strings.Index(trimmed, " a "); i >= 0 && !strings.Contains(trimmed[:i], " ") {
			trimmed = trimmed[:i] + " " + rdfTypeTerm + " " + trimmed[i+3:]
		}
		sb.WriteString(trimmed)
		sb.WriteString("\n")
	}

	dataset, err := ld.ParseNQuads(sb.String())
	if err != nil {
		return fmt.Errorf("parse turtle subset: %w", err)
	}
	s.addDataset(dataset)
	return nil
}

// addDataset adds every quad of a parsed dataset, de-duplicated.
func (s *MemoryStore) addDataset(dataset *ld.RDFDataset) {
	graphNames := make([]string, 0, len(dataset.Graphs))
	for name := range dataset.Graphs {
		graphNames = append(graphNames, name)
	}
	sort.Strings(graphNames)

	for _, name := range graphNames {
		graphTerm := ""
		switch {
		case name == "@default":
		case strings.HasPrefix(name, "_:"):
			graphTerm = name
		default:
			graphTerm = "<" + name + ">"
		}
		for _, quad := range dataset.Graphs[name] {
			s.add(ontology.Quad{
				Subject:   formatNode(quad.Subject),
				Predicate: formatNode(quad.Predicate),
				Object:    formatNode(quad.Object),
				Graph:     graphTerm,
			})
		}
	}
}

// add inserts one quad unless an identical statement is already present.
func (s *MemoryStore) add(q ontology.Quad) {
	if s.seen[q] {
		return
	}
	s.seen[q] = true
	s.quads = append(s.quads, q)
}

// formatNode renders a json-gold node in N-Quads text form.
func formatNode(node ld.Node) string {
	switch v := node.(type) {
	case ld.IRI:
		return "<" + v.Value + ">"
	case ld.BlankNode:
		return v.Attribute
	case ld.Literal:
		out := `"` + escapeLiteral(v.Value) + `"`
		if v.Language != "" {
			return out + "@" + v.Language
		}
		if v.Datatype != "" && v.Datatype != owl.XSDNamespace+"string" {
			return out + "^^<" + v.Datatype + ">"
		}
		return out
	default:
		return ""
	}
}

// escapeLiteral escapes special characters for N-Quads literal output.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}

// Supported query shapes, matched after whitespace normalization.
var (
	countSimpleRe = regexp.MustCompile(
		`^SELECT \(COUNT\(DISTINCT \?\w+\) AS \?(\w+)\) WHERE \{ \?\w+ a <([^>]+)> ?\.? \}$`)

	countUnionRe = regexp.MustCompile(
		`^SELECT \(COUNT\(DISTINCT \?\w+\) AS \?(\w+)\) WHERE \{ \{ \?\w+ a <([^>]+)> ?\.? \} UNION \{ \?\w+ a <([^>]+)> ?\.? \} \}$`)

	countJoinRe = regexp.MustCompile(
		`^SELECT \(COUNT\(DISTINCT \?\w+\) AS \?(\w+)\) WHERE \{ \?\w+ a \?(\w+) ?\. \?(\w+) a <([^>]+)> ?\.? \}$`)

	selectTypedRe = regexp.MustCompile(
		`^SELECT \?(\w+) WHERE \{ \?\w+ a <([^>]+)> ?\.? \}$`)

	askTypedRe = regexp.MustCompile(
		`^ASK (?:WHERE )?\{ \?\w+ a <([^>]+)> ?\.? \}$`)

	constructTypedRe = regexp.MustCompile(
		`^CONSTRUCT (?:WHERE )?\{ \?\w+ a <([^>]+)> ?\.? \}$`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Query executes one of the supported structured query shapes: counting
// entities by type (plain, union, or instance-of-class join), listing
// subjects by type, asking whether a type has instances, or constructing
// the type statements for a class.
func (s *MemoryStore) Query(query string) (ontology.QueryResult, error) {
	q := strings.TrimSpace(whitespaceRe.ReplaceAllString(query, " "))

	if m := countSimpleRe.FindStringSubmatch(q); m != nil {
		return countResult(m[1], len(s.subjectsOfType(m[2]))), nil
	}

	if m := countUnionRe.FindStringSubmatch(q); m != nil {
		union := s.subjectsOfType(m[2])
		for subject := range s.subjectsOfType(m[3]) {
			union[subject] = true
		}
		return countResult(m[1], len(union)), nil
	}

	if m := countJoinRe.FindStringSubmatch(q); m != nil {
		if m[2] != m[3] {
			return ontology.QueryResult{}, fmt.Errorf("unsupported query: join variables differ")
		}
		classes := s.subjectsOfType(m[4])
		individuals := make(map[string]bool)
		for _, quad := range s.quads {
			if quad.Predicate == rdfTypeTerm && classes[quad.Object] {
				individuals[quad.Subject] = true
			}
		}
		return countResult(m[1], len(individuals)), nil
	}

	if m := selectTypedRe.FindStringSubmatch(q); m != nil {
		subjects := sortedKeys(s.subjectsOfType(m[2]))
		result := ontology.QueryResult{Kind: ontology.ResultSolutions}
		for _, subject := range subjects {
			result.Solutions = append(result.Solutions,
				ontology.Solution{{Var: m[1], Value: subject}})
		}
		return result, nil
	}

	if m := askTypedRe.FindStringSubmatch(q); m != nil {
		return ontology.QueryResult{
			Kind:    ontology.ResultBoolean,
			Boolean: len(s.subjectsOfType(m[1])) > 0,
		}, nil
	}

	if m := constructTypedRe.FindStringSubmatch(q); m != nil {
		typeTerm := "<" + m[1] + ">"
		result := ontology.QueryResult{Kind: ontology.ResultGraph}
		for _, quad := range s.quads {
			if quad.Predicate == rdfTypeTerm && quad.Object == typeTerm {
				result.Quads = append(result.Quads, quad)
			}
		}
		return result, nil
	}

	return ontology.QueryResult{}, fmt.Errorf("unsupported query: %s", q)
}

// subjectsOfType returns the set of subject terms typed with the IRI.
func (s *MemoryStore) subjectsOfType(typeIRI string) map[string]bool {
	typeTerm := "<" + typeIRI + ">"
	subjects := make(map[string]bool)
	for _, quad := range s.quads {
		if quad.Predicate == rdfTypeTerm && quad.Object == typeTerm {
			subjects[quad.Subject] = true
		}
	}
	return subjects
}

// countResult builds a single-row solution binding alias to the count.
func countResult(alias string, count int) ontology.QueryResult {
	return ontology.QueryResult{
		Kind: ontology.ResultSolutions,
		Solutions: []ontology.Solution{
			{{Var: alias, Value: fmt.Sprintf("%d", count)}},
		},
	}
}

// sortedKeys returns a set's keys in lexical order for stable output.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

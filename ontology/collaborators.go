package ontology

// SchemaReference supplies the file paths and version hash for one
// schema set. It is provided by the configuration layer and consumed,
// never owned, by the manager.
type SchemaReference interface {
	// CoreOntologyPath is the optional shared core ontology file.
	// An empty string means no core ontology is configured.
	CoreOntologyPath() string

	// DomainOntologyPath is the mandatory domain ontology file.
	DomainOntologyPath() string

	// CoreShapePath is the core constraint-shape file.
	CoreShapePath() string

	// DomainShapePath is the domain constraint-shape file.
	DomainShapePath() string

	// OntologyHash is the precomputed fingerprint of the active schema set.
	OntologyHash() string

	// DomainName identifies the domain this schema set belongs to.
	DomainName() string
}

// Store is the RDF triple store collaborator. Implementations ingest
// classified ontology text and answer structured queries. A store is
// exclusively owned by one manager and is not shareable.
type Store interface {
	// LoadText parses data under the given serialization format and adds
	// the resulting statements to the store.
	LoadText(format Format, data []byte) error

	// Query executes a structured query and returns row bindings, a
	// graph, or a boolean result.
	Query(query string) (QueryResult, error)
}

// Validator is the constraint-shape validation collaborator. A validator
// is exclusively owned by one manager and is not shareable.
type Validator interface {
	// Validate checks transaction RDF text against the loaded shapes.
	Validate(rdfText string) (*ValidationReport, error)
}

// ValidationReport is the outcome of validating one transaction.
type ValidationReport struct {
	// Conforms is true when the transaction satisfies all shapes.
	Conforms bool `json:"conforms"`

	// Violations lists human-readable constraint violations.
	Violations []string `json:"violations,omitempty"`
}

// StoreFactory constructs a fresh, empty store.
type StoreFactory func() (Store, error)

// ValidatorFactory constructs a validator from the two shape file paths
// and the ontology hash.
type ValidatorFactory func(coreShapePath, domainShapePath, hash string) (Validator, error)

// ResultKind discriminates the three query result shapes.
type ResultKind string

const (
	// ResultSolutions is a sequence of row bindings.
	ResultSolutions ResultKind = "solutions"

	// ResultGraph is a sequence of triples or quads.
	ResultGraph ResultKind = "graph"

	// ResultBoolean is a single true/false answer.
	ResultBoolean ResultKind = "boolean"
)

// Binding is one variable/value pair within a solution row.
type Binding struct {
	Var   string
	Value string
}

// Solution is one row of bindings, in projection order.
type Solution []Binding

// Quad is one graph statement. Each field holds the term in N-Quads text
// form (IRIs in angle brackets, literals quoted). Graph is empty for
// triples in the default graph.
type Quad struct {
	Subject   string
	Predicate string
	Object    string
	Graph     string
}

// QueryResult holds the outcome of a structured query. Exactly the
// field selected by Kind is meaningful.
type QueryResult struct {
	Kind      ResultKind
	Solutions []Solution
	Quads     []Quad
	Boolean   bool
}

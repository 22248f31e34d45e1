package ontology

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c360studio/semschema/vocabulary/owl"
)

// Stats reports best-effort entity counts over the loaded ontology.
// A Stats value is recomputed on each request and never persisted; any
// count that cannot be computed defaults to zero.
type Stats struct {
	// ClassCount is the number of distinct OWL classes.
	ClassCount uint `json:"class_count"`

	// PropertyCount is the number of distinct object and datatype
	// properties.
	PropertyCount uint `json:"property_count"`

	// IndividualCount is the number of distinct instances of OWL classes.
	IndividualCount uint `json:"individual_count"`
}

// TotalEntities returns the sum of the three counts.
func (s Stats) TotalEntities() uint {
	return s.ClassCount + s.PropertyCount + s.IndividualCount
}

// The three fixed statistics queries. They are read-only and independent:
// failure of one must never block the others.
var (
	classCountQuery = fmt.Sprintf(
		`SELECT (COUNT(DISTINCT ?class) AS ?count) WHERE { ?class a <%s> . }`,
		owl.ClassClass)

	propertyCountQuery = fmt.Sprintf(
		`SELECT (COUNT(DISTINCT ?property) AS ?count) WHERE { { ?property a <%s> } UNION { ?property a <%s> } }`,
		owl.ClassObjectProperty, owl.ClassDatatypeProperty)

	individualCountQuery = fmt.Sprintf(
		`SELECT (COUNT(DISTINCT ?individual) AS ?count) WHERE { ?individual a ?class . ?class a <%s> . }`,
		owl.ClassClass)
)

// collectStats runs the three fixed count queries through the given query
// function and aggregates the results. Each count is parsed from the first
// result line; a query error, empty result, or unparsable value leaves
// that count at zero.
func collectStats(query func(string) (string, error)) Stats {
	var stats Stats
	stats.ClassCount = countFromQuery(query, classCountQuery)
	stats.PropertyCount = countFromQuery(query, propertyCountQuery)
	stats.IndividualCount = countFromQuery(query, individualCountQuery)
	return stats
}

// countFromQuery executes one count query and parses its first result
// line as an unsigned integer, returning zero on any failure.
func countFromQuery(query func(string) (string, error), q string) uint {
	result, err := query(q)
	if err != nil {
		return 0
	}
	first, _, _ := strings.Cut(result, "\n")
	count, err := strconv.ParseUint(strings.TrimSpace(first), 10, 32)
	if err != nil {
		return 0
	}
	return uint(count)
}

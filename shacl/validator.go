// Package shacl provides the reference structural validator for
// transaction RDF. It checks that shape files are present and that
// transaction text is structurally well-formed under its detected
// serialization; full SHACL constraint evaluation is delegated to an
// external engine wired in through the ontology.Validator seam.
package shacl

import (
	"fmt"
	"os"
	"strings"

	"github.com/piprate/json-gold/ld"

	"github.com/c360studio/semschema/ontology"
)

// StructuralValidator validates transaction RDF structure against the
// configured shape set.
type StructuralValidator struct {
	coreShapePath   string
	domainShapePath string
	hash            string

	// shapeFormats records the detected serialization of each shape file.
	shapeFormats map[string]ontology.Format
}

var _ ontology.Validator = (*StructuralValidator)(nil)

// NewValidator constructs a structural validator from the two shape file
// paths and the ontology hash. Both shape files must exist and be
// readable. The signature matches ontology.ValidatorFactory.
func NewValidator(coreShapePath, domainShapePath, hash string) (ontology.Validator, error) {
	v := &StructuralValidator{
		coreShapePath:   coreShapePath,
		domainShapePath: domainShapePath,
		hash:            hash,
		shapeFormats:    make(map[string]ontology.Format),
	}

	for _, path := range []string{coreShapePath, domainShapePath} {
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &ontology.NotFoundError{Path: path}
			}
			return nil, &ontology.LoadError{Path: path, Err: err}
		}
		v.shapeFormats[path] = ontology.DetectFormat(string(content), path)
	}

	return v, nil
}

// Hash returns the ontology hash this validator was built for.
func (v *StructuralValidator) Hash() string {
	return v.hash
}

// Validate checks transaction RDF text structurally: it must be
// non-empty, and well-formed under its detected serialization format.
// Violations are reported, not returned as errors; errors are reserved
// for the validator itself being unusable.
func (v *StructuralValidator) Validate(rdfText string) (*ontology.ValidationReport, error) {
	report := &ontology.ValidationReport{Conforms: true}

	if strings.TrimSpace(rdfText) == "" {
		report.Conforms = false
		report.Violations = append(report.Violations, "transaction is empty")
		return report, nil
	}

	format := ontology.DetectFormat(rdfText, "")
	switch format {
	case ontology.FormatNTriples, ontology.FormatNQuads:
		if _, err := ld.ParseNQuads(rdfText); err != nil {
			report.Conforms = false
			report.Violations = append(report.Violations,
				fmt.Sprintf("malformed %s: %v", format, err))
		}
	case ontology.FormatTurtle:
		report.Violations = append(report.Violations, checkTurtleStructure(rdfText)...)
		report.Conforms = len(report.Violations) == 0
	case ontology.FormatRDFXML:
		if !strings.Contains(rdfText, "<rdf:RDF") {
			report.Conforms = false
			report.Violations = append(report.Violations,
				"rdfxml transaction is missing an rdf:RDF element")
		}
	}

	return report, nil
}

// checkTurtleStructure performs line-level well-formedness checks on
// Turtle text: balanced quoting and at least one terminated statement.
func checkTurtleStructure(text string) []string {
	var violations []string

	quotes := 0
	escaped := false
	for _, r := range text {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			quotes++
		}
	}
	if quotes%2 != 0 {
		violations = append(violations, "unbalanced string quoting")
	}

	terminated := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, ".") {
			terminated = true
		}
	}
	if !terminated {
		violations = append(violations, "no terminated statements found")
	}

	return violations
}

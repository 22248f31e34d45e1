package ontology

import (
	"path/filepath"
	"strings"
)

// Format identifies an RDF serialization format.
type Format string

const (
	// FormatTurtle is the Turtle (.ttl) serialization.
	FormatTurtle Format = "turtle"

	// FormatRDFXML is the RDF/XML (.rdf, .owl) serialization.
	FormatRDFXML Format = "rdfxml"

	// FormatNTriples is the N-Triples (.nt) serialization.
	FormatNTriples Format = "ntriples"

	// FormatNQuads is the N-Quads (.nq) serialization.
	FormatNQuads Format = "nquads"
)

// DetectFormat classifies RDF text into a serialization format using the
// content first and the file extension as a fallback. Detection is a pure
// function of its inputs and never fails; Turtle is the universal fallback.
//
// Precedence, first match wins:
//  1. Turtle prefix/base markers anywhere in the content
//  2. XML declaration or rdf:RDF element
//  3. Every non-empty, non-comment line ends with " ." (N-Triples)
//  4. File extension mapping
func DetectFormat(content, path string) Format {
	trimmed := strings.TrimSpace(content)

	if strings.HasPrefix(trimmed, "@prefix") ||
		strings.HasPrefix(trimmed, "@base") ||
		strings.Contains(content, "@prefix") {
		return FormatTurtle
	}

	if strings.HasPrefix(trimmed, "<?xml") ||
		strings.HasPrefix(trimmed, "<rdf:RDF") ||
		strings.Contains(content, "<rdf:RDF") {
		return FormatRDFXML
	}

	if allLinesTripleLike(content) {
		return FormatNTriples
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "ttl", "turtle":
		return FormatTurtle
	case "owl", "rdf", "xml":
		// Many .owl files are actually Turtle; only treat as RDF/XML when
		// the content carries XML markers.
		if strings.Contains(content, "<?xml") || strings.Contains(content, "<rdf:RDF") {
			return FormatRDFXML
		}
		return FormatTurtle
	case "nt":
		return FormatNTriples
	case "nq":
		return FormatNQuads
	default:
		return FormatTurtle
	}
}

// allLinesTripleLike reports whether every line, after trimming, is empty,
// a comment, or ends with " ." like an N-Triples statement.
func allLinesTripleLike(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasSuffix(line, " .") {
			continue
		}
		return false
	}
	return true
}

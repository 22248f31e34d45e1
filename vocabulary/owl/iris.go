// Package owl provides IRI constants for the W3C vocabularies used by
// semschema: RDF, RDFS, OWL, XSD, and SHACL.
package owl

// Namespace is the base IRI prefix for OWL terms.
const Namespace = "http://www.w3.org/2002/07/owl#"

// Standard W3C namespace prefixes.
const (
	// RDFNamespace is the base IRI for the RDF syntax vocabulary.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the base IRI for the RDF Schema vocabulary.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// XSDNamespace is the base IRI for XML Schema datatypes.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// SHACLNamespace is the base IRI for the Shapes Constraint Language.
	SHACLNamespace = "http://www.w3.org/ns/shacl#"
)

// Class IRIs identify the entity kinds counted by ontology statistics.
const (
	// ClassClass is the OWL class of classes.
	ClassClass = Namespace + "Class"

	// ClassObjectProperty is the OWL class of object properties.
	ClassObjectProperty = Namespace + "ObjectProperty"

	// ClassDatatypeProperty is the OWL class of datatype properties.
	ClassDatatypeProperty = Namespace + "DatatypeProperty"

	// ClassOntology is the OWL class of ontology headers.
	ClassOntology = Namespace + "Ontology"

	// ClassNamedIndividual is the OWL class of named individuals.
	ClassNamedIndividual = Namespace + "NamedIndividual"
)

// Core RDF and RDFS term IRIs.
const (
	// TypeIRI is the rdf:type predicate.
	TypeIRI = RDFNamespace + "type"

	// CommentIRI is the rdfs:comment annotation predicate.
	CommentIRI = RDFSNamespace + "comment"

	// LabelIRI is the rdfs:label annotation predicate.
	LabelIRI = RDFSNamespace + "label"

	// SubClassOfIRI is the rdfs:subClassOf predicate.
	SubClassOfIRI = RDFSNamespace + "subClassOf"
)

// SHACL term IRIs used by shape files.
const (
	// ShapeNodeShape is the sh:NodeShape class.
	ShapeNodeShape = SHACLNamespace + "NodeShape"

	// ShapeTargetClass is the sh:targetClass predicate.
	ShapeTargetClass = SHACLNamespace + "targetClass"
)

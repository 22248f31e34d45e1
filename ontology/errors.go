package ontology

import "fmt"

// NotFoundError indicates a referenced ontology file path does not exist.
type NotFoundError struct {
	// Path is the missing file path, verbatim.
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("ontology not found: %s", e.Path)
}

// LoadError indicates an I/O failure reading a file or constructing the
// store or validator. It wraps the underlying cause.
type LoadError struct {
	// Path is the file path or resource name that failed to load.
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ParseError indicates content was read successfully but failed to parse
// under its detected serialization format.
type ParseError struct {
	// Path is the file path whose content failed to parse.
	Path string
	// Message is a diagnostic describing the parse failure.
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %s", e.Path, e.Message)
}

// ConsistencyError indicates the local ontology hash does not match a
// peer-supplied hash. Both hash values are carried verbatim.
type ConsistencyError struct {
	// LocalHash is this participant's ontology hash.
	LocalHash string
	// PeerHash is the hash supplied by the network peer.
	PeerHash string
	// Message names the domain and explains the mismatch.
	Message string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("ontology consistency check failed: %s (local=%s peer=%s)",
		e.Message, e.LocalHash, e.PeerHash)
}

// ValidationError indicates a delegated shape-validation failure.
type ValidationError struct {
	// Err is the underlying validator error.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("transaction validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

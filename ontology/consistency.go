package ontology

import "fmt"

// checkConsistency compares a local ontology hash against a peer-supplied
// hash. The comparison is exact and byte-for-byte; there is no I/O and no
// tolerance for prefix or case differences. On mismatch the returned error
// carries both hashes verbatim and names the local domain.
func checkConsistency(localHash, peerHash, domainName string) error {
	if localHash == peerHash {
		return nil
	}
	return &ConsistencyError{
		LocalHash: localHash,
		PeerHash:  peerHash,
		Message: fmt.Sprintf(
			"local ontology %q does not match network ontology; all participants must use the same domain ontology",
			domainName),
	}
}

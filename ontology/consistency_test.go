package ontology

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckConsistencyMatch(t *testing.T) {
	if err := checkConsistency("abc123", "abc123", "dairy"); err != nil {
		t.Errorf("identical hashes should pass: %v", err)
	}
}

func TestCheckConsistencyMismatch(t *testing.T) {
	err := checkConsistency("abc123", "def456", "dairy")
	if err == nil {
		t.Fatal("differing hashes should fail")
	}

	var consistencyErr *ConsistencyError
	if !errors.As(err, &consistencyErr) {
		t.Fatalf("expected *ConsistencyError, got %T", err)
	}
	if consistencyErr.LocalHash != "abc123" {
		t.Errorf("LocalHash = %q, want %q", consistencyErr.LocalHash, "abc123")
	}
	if consistencyErr.PeerHash != "def456" {
		t.Errorf("PeerHash = %q, want %q", consistencyErr.PeerHash, "def456")
	}
	if !strings.Contains(consistencyErr.Message, "dairy") {
		t.Errorf("Message should name the domain: %q", consistencyErr.Message)
	}
}

func TestCheckConsistencyIsExact(t *testing.T) {
	tests := []struct {
		local, peer string
	}{
		{"abc123", "ABC123"},
		{"abc123", "abc123 "},
		{"abc123", "abc12"},
		{"", "abc123"},
	}
	for _, tt := range tests {
		if err := checkConsistency(tt.local, tt.peer, "dairy"); err == nil {
			t.Errorf("checkConsistency(%q, %q) should fail", tt.local, tt.peer)
		}
	}

	if err := checkConsistency("", "", "dairy"); err != nil {
		t.Errorf("two empty hashes are byte-equal: %v", err)
	}
}

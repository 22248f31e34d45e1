package ontology

import (
	"fmt"
	"strings"
	"testing"
)

func TestStatsTotalEntities(t *testing.T) {
	stats := Stats{ClassCount: 10, PropertyCount: 20, IndividualCount: 5}
	if got := stats.TotalEntities(); got != 35 {
		t.Errorf("TotalEntities() = %d, want 35", got)
	}

	var zero Stats
	if got := zero.TotalEntities(); got != 0 {
		t.Errorf("zero TotalEntities() = %d, want 0", got)
	}
}

func TestCollectStats(t *testing.T) {
	query := func(q string) (string, error) {
		switch {
		case strings.Contains(q, "UNION"):
			return "7\n", nil
		case strings.Contains(q, "?individual"):
			return "3\n", nil
		default:
			return "12\n", nil
		}
	}

	stats := collectStats(query)
	if stats.ClassCount != 12 || stats.PropertyCount != 7 || stats.IndividualCount != 3 {
		t.Errorf("collectStats() = %+v", stats)
	}
	if stats.TotalEntities() != 22 {
		t.Errorf("TotalEntities() = %d, want 22", stats.TotalEntities())
	}
}

func TestCollectStatsAbsorbsFailures(t *testing.T) {
	// One failing query must not block the others.
	query := func(q string) (string, error) {
		if strings.Contains(q, "UNION") {
			return "", fmt.Errorf("store unavailable")
		}
		return "4\n", nil
	}

	stats := collectStats(query)
	if stats.PropertyCount != 0 {
		t.Errorf("failed count should default to zero, got %d", stats.PropertyCount)
	}
	if stats.ClassCount != 4 || stats.IndividualCount != 4 {
		t.Errorf("other counts must still compute: %+v", stats)
	}
}

func TestCollectStatsUnparsableValue(t *testing.T) {
	query := func(q string) (string, error) {
		return "not a number\n", nil
	}

	stats := collectStats(query)
	if stats.TotalEntities() != 0 {
		t.Errorf("unparsable counts should be zero, got %+v", stats)
	}
}

func TestCollectStatsEmptyResult(t *testing.T) {
	query := func(q string) (string, error) {
		return "", nil
	}

	stats := collectStats(query)
	if stats.TotalEntities() != 0 {
		t.Errorf("empty results should be zero, got %+v", stats)
	}
}

package helptext

import (
	"strings"
	"testing"
)

func TestHelpNoTopicsListsIndex(t *testing.T) {
	got := Help(nil)
	if !strings.HasPrefix(got, "Available topics: ") {
		t.Fatalf("Help(nil) = %q", got)
	}
	if !strings.Contains(got, "+") {
		t.Errorf("Help(nil) should list + among the topics: %q", got)
	}
}

func TestHelpKnownTopic(t *testing.T) {
	got := Help([]string{"+"})
	if !strings.Contains(got, "sums its arguments") {
		t.Errorf("Help([+]) = %q", got)
	}
}

func TestHelpUnknownTopic(t *testing.T) {
	got := Help([]string{"bogus-topic"})
	if !strings.Contains(got, `No help available for "bogus-topic"`) {
		t.Errorf("Help([bogus-topic]) = %q", got)
	}
}

func TestHelpMultipleTopicsAreNewlineJoined(t *testing.T) {
	got := Help([]string{"+", "-"})
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("Help([+, -]) produced %d lines, want 2: %q", len(lines), got)
	}
}

package strutil

import (
	"testing"

	"charm.land/lipgloss/v2"
)

func TestLimit(t *testing.T) {
	if got := Limit("short", 10); got != "short" {
		t.Errorf("Expected unmodified string, got %q", got)
	}
	if w := lipgloss.Width(Limit("a very long tab label", 8)); w > 8 {
		t.Errorf("Expected width <= 8, got %d", w)
	}
}

func TestRepeat(t *testing.T) {
	if got := Repeat("ab", 3); got != "ababab" {
		t.Errorf("Expected 'ababab', got %q", got)
	}
	if got := Repeat("x", 0); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
	if got := Repeat("x", -5); got != "" {
		t.Errorf("Negative counts must not panic, got %q", got)
	}
}

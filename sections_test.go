package taxform

import (
	"strings"
	"testing"
)

func TestSplitSections(t *testing.T) {
	doc := []string{
		"Company AG",
		"Annex to the salary certificate",
		"FIRST",
		"one",
		"two",
		"SECOND",
		"three",
	}
	markers := []sectionMarker{
		{name: "first", match: func(l string) bool { return l == "FIRST" }},
		{name: "second", match: func(l string) bool { return l == "SECOND" }},
	}

	got := splitSections(doc, markers)
	if len(got) != 2 {
		t.Fatalf("got %d sections, want 2", len(got))
	}
	if got[0].name != "first" || got[0].header != "FIRST" {
		t.Errorf("first section = %q (%q)", got[0].name, got[0].header)
	}
	if strings.Join(got[0].lines, ",") != "one,two" {
		t.Errorf("first section lines = %v, want [one two]", got[0].lines)
	}
	if got[1].name != "second" || strings.Join(got[1].lines, ",") != "three" {
		t.Errorf("second section = %q %v", got[1].name, got[1].lines)
	}
}

// A document may omit a leading section entirely; the later markers still
// open their sections.
func TestSplitSectionsSkipsMissing(t *testing.T) {
	doc := []string{"preamble", "SECOND", "three"}
	markers := []sectionMarker{
		{name: "first", match: func(l string) bool { return l == "FIRST" }},
		{name: "second", match: func(l string) bool { return l == "SECOND" }},
	}

	got := splitSections(doc, markers)
	if len(got) != 1 {
		t.Fatalf("got %d sections, want 1", len(got))
	}
	if got[0].name != "second" {
		t.Errorf("section = %q, want %q", got[0].name, "second")
	}

	// Once a later marker has matched, an earlier heading further down the
	// document no longer opens a section.
	got = splitSections([]string{"SECOND", "FIRST", "three"}, markers)
	if len(got) != 1 {
		t.Fatalf("got %d sections, want 1", len(got))
	}
	if strings.Join(got[0].lines, ",") != "FIRST,three" {
		t.Errorf("section lines = %v, want [FIRST three]", got[0].lines)
	}
}

func TestSplitSectionsEmptyDocument(t *testing.T) {
	if got := splitSections(nil, nil); len(got) != 0 {
		t.Errorf("got %d sections, want 0", len(got))
	}
}

package prompt

import (
	"strings"
	"testing"
)

func TestBuildContainsAllSections(t *testing.T) {
	b := NewBuilder()
	got := b.Build("I have a migraine")

	wantFragments := []string{
		"You are a knowledgeable Ayurveda assistant",
		"IMPORTANT: Respond to ALL health-related queries",
		"1. Ayurvedic Name",
		"10. Precautions",
		"### Example 1:",
		"Chittodvega (Anxiety)",
		"### Example 2:",
		"Madhumeha (Diabetes)",
		"User query: I have a migraine",
	}

	for _, frag := range wantFragments {
		if !strings.Contains(got, frag) {
			t.Errorf("prompt missing fragment %q", frag)
		}
	}
}

func TestBuildSectionOrder(t *testing.T) {
	b := NewBuilder()
	got := b.Build("anything")

	markers := []string{
		"You are a knowledgeable Ayurveda assistant",
		"IMPORTANT:",
		"Always include:",
		"### Example 1:",
		"### Example 2:",
		"User query:",
	}

	last := -1
	for _, m := range markers {
		idx := strings.Index(got, m)
		if idx < 0 {
			t.Fatalf("prompt missing marker %q", m)
		}
		if idx <= last {
			t.Errorf("marker %q out of order (index %d, previous %d)", m, idx, last)
		}
		last = idx
	}
}

func TestBuildEndsWithQuery(t *testing.T) {
	b := NewBuilder()
	got := b.Build("my friend has acidity")

	if !strings.HasSuffix(got, "User query: my friend has acidity\n") {
		t.Errorf("prompt does not end with the user query, tail: %q", got[len(got)-60:])
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	b := NewBuilder()

	first := b.Build("same query")
	second := b.Build("same query")

	if first != second {
		t.Error("identical queries produced different prompts")
	}
}

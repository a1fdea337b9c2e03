package textutil

import "testing"

func TestCleanTitle(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		want     string
	}{
		{"extension stripped", "Dune.epub", "Dune"},
		{"brackets removed", "Dune (1965) [retail].epub", "Dune"},
		{"curly braces removed", "Dune {v2}.mobi", "Dune"},
		{"leading number removed", "01 - The Fellowship of the Ring.pdf", "The Fellowship of the Ring"},
		{"leading number with dot", "12. Thinking Fast and Slow.txt", "Thinking Fast and Slow"},
		{"whitespace collapsed", "A   Brief  History.pdf", "A Brief History"},
		{"plain title untouched", "Neuromancer.azw3", "Neuromancer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanTitle(tc.filename); got != tc.want {
				t.Fatalf("CleanTitle(%q) = %q, want %q", tc.filename, got, tc.want)
			}
		})
	}
}

func TestSanitizeFileName(t *testing.T) {
	if got := SanitizeFileName("Science/Fiction: Best*"); got != "Science-Fiction- Best-" {
		t.Fatalf("SanitizeFileName = %q", got)
	}
	if got := SanitizeFileName("  Mystery  "); got != "Mystery" {
		t.Fatalf("SanitizeFileName trim = %q", got)
	}
	if got := SanitizeFileName(""); got != "" {
		t.Fatalf("SanitizeFileName empty = %q", got)
	}
}

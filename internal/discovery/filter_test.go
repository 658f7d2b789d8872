package discovery

import (
	"testing"

	"okc/internal/domain"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		paths    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			paths:    []string{"hw01.json", "hw02.json", "lab01.yml"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches suffix",
			paths:    []string{"hw01.json", "hw02.json", "lab01.yml"},
			pattern:  "*.json",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			paths:    []string{"hw01.json", "hw02.json", "lab01.yml", "lab01_extra.yml"},
			pattern:  "*lab*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			paths:    []string{"hw01.json", "hw02.json", "lab01.yml"},
			pattern:  "hw02",
			expected: 1,
		},
		{
			name:     "no matches",
			paths:    []string{"hw01.json", "hw02.json"},
			pattern:  "*proj*",
			expected: 0,
		},
		{
			name:     "full path with wildcard",
			paths:    []string{"/course/tests/hw01.json", "/course/tests/hw02.json"},
			pattern:  "*hw01.json",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.paths, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterTests(t *testing.T) {
	filter := NewFilter()
	tests := []*domain.Test{
		domain.NewTest(domain.TestOptions{Names: []string{"q1", "square"}}),
		domain.NewTest(domain.TestOptions{Names: []string{"q2", "cube"}}),
		domain.NewTest(domain.TestOptions{}),
	}

	t.Run("matches any alias", func(t *testing.T) {
		result := filter.FilterTests(tests, "cube")
		if len(result) != 1 || result[0] != tests[1] {
			t.Errorf("expected q2, got %d tests", len(result))
		}
	})

	t.Run("wildcard", func(t *testing.T) {
		result := filter.FilterTests(tests, "q*")
		if len(result) != 2 {
			t.Errorf("expected 2 tests, got %d", len(result))
		}
	})

	t.Run("empty pattern keeps unnamed tests", func(t *testing.T) {
		result := filter.FilterTests(tests, "")
		if len(result) != 3 {
			t.Errorf("expected 3 tests, got %d", len(result))
		}
	})
}

func TestFilter_Match_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("pattern with multiple wildcards", func(t *testing.T) {
		if !filter.Match("*hw*json", "hw01_extra.json") {
			t.Error("expected match for multiple wildcards")
		}
	})

	t.Run("only wildcards", func(t *testing.T) {
		if !filter.Match("*", "anything") {
			t.Error("expected lone wildcard to match")
		}
	})

	t.Run("question mark", func(t *testing.T) {
		if !filter.Match("q?", "q1") {
			t.Error("expected q? to match q1")
		}
		if filter.Match("q?", "q10") {
			t.Error("expected q? not to match q10")
		}
	})
}

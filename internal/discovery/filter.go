package discovery

import (
	"path/filepath"
	"strings"

	"okc/internal/domain"
)

// Filter filters fixture files and tests by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters paths by the pattern applied to their base name.
// Supports patterns like "*hw01.json" or "*lab*"
func (f *Filter) FilterByName(paths []string, pattern string) []string {
	if pattern == "" {
		return paths
	}

	var filtered []string
	for _, path := range paths {
		if f.Match(pattern, filepath.Base(path)) {
			filtered = append(filtered, path)
		}
	}
	return filtered
}

// FilterTests keeps the tests that have at least one name matching pattern
func (f *Filter) FilterTests(tests []*domain.Test, pattern string) []*domain.Test {
	if pattern == "" {
		return tests
	}

	var filtered []*domain.Test
	for _, test := range tests {
		for _, name := range test.Names {
			if f.Match(pattern, name) {
				filtered = append(filtered, test)
				break
			}
		}
	}
	return filtered
}

// Match reports whether name matches pattern. Patterns with wildcards use
// filepath.Match and fall back to matching every non-empty part as a
// substring; plain patterns match as substrings.
func (f *Filter) Match(pattern, name string) bool {
	if pattern == "" {
		return true
	}

	matched, err := filepath.Match(pattern, name)
	if err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}

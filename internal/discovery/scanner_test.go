package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "okc-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testDirs := []string{
		"tests/hw01",
		"tests/lab02",
		"vendor",
		".git",
	}
	for _, dir := range testDirs {
		if err := os.MkdirAll(filepath.Join(tmpDir, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}

	files := []string{
		"tests/hw01/hw01.json",
		"tests/hw01/extra.yaml",
		"tests/lab02/lab02.yml",
		"tests/lab02/lab02.py",
		"vendor/some/fixture.json",
		".git/config.json",
		"README.md",
	}
	for _, file := range files {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("{}"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"vendor"})

	t.Run("scans fixture files correctly", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Should find 3 fixture files, not the ones in vendor/.git
		if len(results) != 3 {
			t.Errorf("expected 3 fixture files, got %d: %v", len(results), results)
		}
	})

	t.Run("single fixture file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "tests/hw01/hw01.json")
		results, err := scanner.Scan(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0] != path {
			t.Errorf("expected [%s], got %v", path, results)
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for non-fixture file", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "README.md"))
		if err == nil {
			t.Error("expected error for non-fixture file")
		}
	})
}

func TestIsFixture(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"hw01.json", true},
		{"hw01.YAML", true},
		{"lab.yml", true},
		{"hw01.py", false},
		{"json", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if IsFixture(tt.path) != tt.expected {
				t.Errorf("expected %v for %s", tt.expected, tt.path)
			}
		})
	}
}

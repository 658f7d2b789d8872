package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FixtureExtensions are the file extensions recognized as fixture files
var FixtureExtensions = []string{".json", ".yml", ".yaml"}

// Scanner scans for fixture files in a directory
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds all fixture files under root. A root that is itself a fixture
// file is returned as the only result.
func (s *Scanner) Scan(root string) ([]string, error) {
	var fixtures []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("fixture path does not exist: %s", root)
	}
	if !info.IsDir() {
		if IsFixture(root) {
			return []string{root}, nil
		}
		return nil, fmt.Errorf("fixture path is not a directory or fixture file: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}

			if s.skipDirs[name] {
				return filepath.SkipDir
			}

			return nil
		}

		if IsFixture(path) {
			fixtures = append(fixtures, path)
		}
		return nil
	})

	return fixtures, err
}

// IsFixture reports whether path has a fixture file extension
func IsFixture(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range FixtureExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

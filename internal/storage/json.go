package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"okc/internal/domain"
)

// JSONStorage stores assignments as indented JSON files.
type JSONStorage struct {
	registry *domain.Registry
}

// NewJSONStorage returns a Storage that decodes cases through registry.
func NewJSONStorage(registry *domain.Registry) *JSONStorage {
	return &JSONStorage{registry: registry}
}

// Load reads and decodes the assignment stored at path.
func (s *JSONStorage) Load(path string) (*domain.Assignment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture file: %w", err)
	}
	assignment, err := decodeAssignment(data, s.registry)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return assignment, nil
}

// Save encodes the assignment and writes it to path.
func (s *JSONStorage) Save(path string, assignment *domain.Assignment) error {
	wire, err := encodeAssignment(assignment)
	if err != nil {
		return fmt.Errorf("encode assignment: %w", err)
	}
	data, err := domain.EncodeJSONIndent(wire, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal assignment: %w", err)
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create fixture dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write fixture file: %w", err)
	}
	return nil
}

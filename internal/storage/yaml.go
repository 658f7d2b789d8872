package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"okc/internal/domain"
)

// YAMLStorage stores assignments as YAML files with the same tree as the
// JSON format.
type YAMLStorage struct {
	registry *domain.Registry
}

// NewYAMLStorage returns a Storage that decodes cases through registry.
func NewYAMLStorage(registry *domain.Registry) *YAMLStorage {
	return &YAMLStorage{registry: registry}
}

// Load reads the YAML document at path and decodes it as an assignment.
func (s *YAMLStorage) Load(path string) (*domain.Assignment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture file: %w", err)
	}
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse yaml %s: %w", path, err)
	}
	jsonData, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("convert yaml %s: %w", path, err)
	}
	assignment, err := decodeAssignment(jsonData, s.registry)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return assignment, nil
}

// Save encodes the assignment and writes it to path as YAML.
func (s *YAMLStorage) Save(path string, assignment *domain.Assignment) error {
	wire, err := encodeAssignment(assignment)
	if err != nil {
		return fmt.Errorf("encode assignment: %w", err)
	}
	jsonData, err := json.Marshal(wire)
	if err != nil {
		return fmt.Errorf("marshal assignment: %w", err)
	}
	var tree any
	if err := json.Unmarshal(jsonData, &tree); err != nil {
		return fmt.Errorf("convert assignment: %w", err)
	}
	data, err := yaml.Marshal(tree)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return writeFile(path, data)
}

package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"okc/internal/domain"
)

// Storage loads and saves assignment fixture files.
type Storage interface {
	Load(path string) (*domain.Assignment, error)
	Save(path string, assignment *domain.Assignment) error
}

// ForPath returns the Storage matching the file extension of path.
func ForPath(path string, registry *domain.Registry) (Storage, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return NewJSONStorage(registry), nil
	case ".yml", ".yaml":
		return NewYAMLStorage(registry), nil
	default:
		return nil, fmt.Errorf("unsupported fixture format: %s", path)
	}
}

// assignmentJSON is the on-disk shape shared by every format.
type assignmentJSON struct {
	Name  string            `json:"name,omitempty"`
	Info  map[string]any    `json:"info,omitempty"`
	Tests []json.RawMessage `json:"tests"`
}

func decodeAssignment(data []byte, registry *domain.Registry) (*domain.Assignment, error) {
	var wire assignmentJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("parse assignment: %w", err)
	}

	info := domain.AssignmentInfo(wire.Info)
	if info == nil {
		info = domain.AssignmentInfo{}
	}
	assignment := &domain.Assignment{
		Name:  wire.Name,
		Info:  info,
		Tests: make([]*domain.Test, 0, len(wire.Tests)),
	}
	for i, raw := range wire.Tests {
		test, err := domain.DeserializeTest(raw, info, registry)
		if err != nil {
			return nil, fmt.Errorf("test %d: %w", i, err)
		}
		assignment.Tests = append(assignment.Tests, test)
	}
	return assignment, nil
}

func encodeAssignment(assignment *domain.Assignment) (assignmentJSON, error) {
	wire := assignmentJSON{
		Name:  assignment.Name,
		Info:  assignment.Info,
		Tests: make([]json.RawMessage, 0, len(assignment.Tests)),
	}
	for _, test := range assignment.Tests {
		raw, err := test.Serialize()
		if err != nil {
			return assignmentJSON{}, err
		}
		wire.Tests = append(wire.Tests, raw)
	}
	return wire, nil
}

package commands

import (
	"path/filepath"
	"strings"

	"okc/internal/config"
	"okc/internal/discovery"
	"okc/internal/domain"
	"okc/internal/storage"
)

// fixtureLoader discovers and loads the fixture files selected by the config
type fixtureLoader struct {
	config   *config.Config
	scanner  *discovery.Scanner
	filter   *discovery.Filter
	registry *domain.Registry
}

func newFixtureLoader(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter, registry *domain.Registry) *fixtureLoader {
	return &fixtureLoader{
		config:   cfg,
		scanner:  scanner,
		filter:   filter,
		registry: registry,
	}
}

// Files returns the fixture files under the fixture path matching the name filter
func (l *fixtureLoader) Files() ([]string, error) {
	files, err := l.scanner.Scan(l.config.GetFixturePath())
	if err != nil {
		return nil, err
	}
	return l.filter.FilterByName(files, l.config.Flags.NameFilter), nil
}

// Load reads the assignment stored at path
func (l *fixtureLoader) Load(path string) (*domain.Assignment, storage.Storage, error) {
	st, err := storage.ForPath(path, l.registry)
	if err != nil {
		return nil, nil, err
	}
	assignment, err := st.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return assignment, st, nil
}

// assignmentNameFromPath derives an assignment name from the fixture file name
func assignmentNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

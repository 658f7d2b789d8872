// Package cases provides the concrete test case variants understood by okc.
package cases

import "okc/internal/domain"

// DefaultRegistry returns a registry holding every built-in variant.
func DefaultRegistry() *domain.Registry {
	registry, err := domain.NewRegistry(ConceptVariant{}, DoctestVariant{})
	if err != nil {
		// Built-in tags are distinct constants.
		panic(err)
	}
	return registry
}

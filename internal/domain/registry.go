package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Variant decodes the cases of one type tag.
type Variant interface {
	Type() string
	Deserialize(caseJSON json.RawMessage, info AssignmentInfo) (Case, error)
}

// Registry maps type tags to the variants that decode them.
type Registry struct {
	variants map[string]Variant
}

// NewRegistry creates a Registry holding the given variants.
func NewRegistry(variants ...Variant) (*Registry, error) {
	r := &Registry{variants: make(map[string]Variant)}
	for _, v := range variants {
		if err := r.Register(v); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a variant. Type tags are unique per registry.
func (r *Registry) Register(v Variant) error {
	tag := v.Type()
	if tag == "" {
		return fmt.Errorf("register variant %T: empty type tag", v)
	}
	if _, ok := r.variants[tag]; ok {
		return fmt.Errorf("register variant %q: %w", tag, ErrDuplicateCaseType)
	}
	r.variants[tag] = v
	return nil
}

// Lookup returns the variant registered for tag.
func (r *Registry) Lookup(tag string) (Variant, error) {
	if r != nil {
		if v, ok := r.variants[tag]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownCaseType, tag)
}

// Types returns the registered type tags in sorted order.
func (r *Registry) Types() []string {
	tags := make([]string, 0, len(r.variants))
	for tag := range r.variants {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// SPDX-License-Identifier: MIT
// Package: randlab/rejection
//
// registry.go — id → Spec lookup for callers that select densities by name.

package rejection

import "fmt"

// Registry maps density ids onto Specs. Build it once and treat it as
// read-only afterwards; Register is not safe concurrently with Lookup.
type Registry struct {
	specs map[string]Spec
	order []string
}

// NewRegistry returns a registry holding specs, in order.
func NewRegistry(specs ...Spec) (*Registry, error) {
	r := &Registry{specs: make(map[string]Spec, len(specs))}
	for _, s := range specs {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultRegistry returns a new registry with Linear, Quadratic and Hyperbola.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(Linear(), Quadratic(), Hyperbola())
	if err != nil {
		panic(err) // built-in specs are valid
	}
	return r
}

// Register adds s. Empty or duplicate ids and invalid specs are rejected.
func (r *Registry) Register(s Spec) error {
	if s.ID == "" {
		return fmt.Errorf("Register: empty id: %w", ErrInvalidParameter)
	}
	if _, dup := r.specs[s.ID]; dup {
		return fmt.Errorf("Register: duplicate id %q: %w", s.ID, ErrInvalidParameter)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("Register: %w", err)
	}
	r.specs[s.ID] = s
	r.order = append(r.order, s.ID)

	return nil
}

// Lookup returns the Spec registered under id.
func (r *Registry) Lookup(id string) (Spec, error) {
	s, ok := r.specs[id]
	if !ok {
		return Spec{}, fmt.Errorf("Lookup: unknown density %q: %w", id, ErrInvalidParameter)
	}
	return s, nil
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

package measure

import "fmt"

// Registry is an immutable, ordered lookup over measurement definitions.
// It is constructed once at startup from the in-memory dataset and never
// mutated afterwards; all accessors return copies.
type Registry struct {
	order []string
	byID  map[string]Definition
}

// NewRegistry builds a registry from an ordered sequence of definitions.
// It rejects blank and duplicate ids; it does not derive dimensions, so a
// definition with an unknown unit is storable (the hard ErrUnknownUnit
// fires only when a consumer derives the dimension).
func NewRegistry(defs []Definition) (*Registry, error) {
	r := &Registry{
		order: make([]string, 0, len(defs)),
		byID:  make(map[string]Definition, len(defs)),
	}
	for _, d := range defs {
		if d.ID == "" {
			return nil, ErrEmptyID
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, d.ID)
		}
		r.order = append(r.order, d.ID)
		r.byID[d.ID] = d
	}
	return r, nil
}

// Get returns the definition for id. A miss is a soft condition: the second
// return value is false and no error is involved.
func (r *Registry) Get(id string) (Definition, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.order)
}

// All returns the definitions in insertion order.
func (r *Registry) All() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// IDs returns the measurement ids in insertion order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

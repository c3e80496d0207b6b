package calculator

import (
	"fmt"
	"sort"
)

// Registry holds calculators in registration order.
type Registry struct {
	order []string
	defs  map[string]Definition
}

// NewRegistry registers defs in order. Duplicate IDs are rejected.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds def to the registry.
func (r *Registry) Register(def Definition) error {
	if def == nil {
		return fmt.Errorf("nil calculator definition")
	}
	if _, exists := r.defs[def.ID()]; exists {
		return fmt.Errorf("calculator %s already registered", def.ID())
	}
	r.defs[def.ID()] = def
	r.order = append(r.order, def.ID())
	return nil
}

// Lookup returns the calculator registered under id.
func (r *Registry) Lookup(id string) (Definition, error) {
	def, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCalculator, id)
	}
	return def, nil
}

// List returns every calculator in registration order.
func (r *Registry) List() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}

// ByCategory groups calculators by category; categories are sorted and
// each group keeps registration order.
func (r *Registry) ByCategory() map[Category][]Definition {
	groups := make(map[Category][]Definition)
	for _, def := range r.List() {
		groups[def.Category()] = append(groups[def.Category()], def)
	}
	return groups
}

// Categories returns the distinct categories in sorted order.
func (r *Registry) Categories() []Category {
	groups := r.ByCategory()
	cats := make([]Category, 0, len(groups))
	for c := range groups {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

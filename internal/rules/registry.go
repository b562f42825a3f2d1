package rules

import (
	"fmt"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

// BuilderFunc creates a rule for a house style.
// The returned rule must implement driven.ParagraphRule or driven.DocumentRule.
type BuilderFunc func(style domain.HouseStyle) (driven.Rule, error)

// Registry maps rule ids to their builders.
// Registration order is report order.
type Registry struct {
	builders map[string]BuilderFunc
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a rule builder. Registering an id again replaces the
// builder and keeps the original position.
func (r *Registry) Register(id string, builder BuilderFunc) {
	if _, ok := r.builders[id]; !ok {
		r.order = append(r.order, id)
	}
	r.builders[id] = builder
}

// Build creates a rule by id.
func (r *Registry) Build(id string, style domain.HouseStyle) (driven.Rule, error) {
	builder, ok := r.builders[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRule, id)
	}
	return builder(style)
}

// Has returns true if a rule with the given id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.builders[id]
	return ok
}

// Names returns registered ids in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

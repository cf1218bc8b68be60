package selection

import (
	"context"
	"fmt"
	"sort"

	"github.com/hydroshield/specbuilder-backend/internal/catalog"
)

// Option is one selectable value for the next attribute.
type Option struct {
	Value any    `json:"value"`
	Label string `json:"label"`
}

// Step is the resolver's answer: which attribute to ask about next, or
// Complete when nothing remains to narrow.
type Step struct {
	Attribute string   `json:"next_step"`
	Options   []Option `json:"options"`
	Complete  bool     `json:"complete"`
}

// Resolver computes the next selection step from a partial filter set.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// NextStep walks the effective attribute order and returns the first
// not-yet-chosen attribute that still has distinct values under the current
// filters. Attributes with no distinct values are skipped, not errors: a
// fully-pinned filter set simply has nothing left to discriminate on.
//
// The walk is a plain loop with a visited set so the skip behavior stays
// auditable.
func (r *Resolver) NextStep(ctx context.Context, filters Filters) (Step, error) {
	visited := make(map[string]bool, len(filters))
	for name := range filters {
		if _, ok := catalog.ByName(name); !ok {
			return Step{}, fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
		}
		visited[name] = true
	}

	for _, attr := range catalog.EffectiveOrder(filters) {
		if visited[attr.Name] {
			continue
		}
		visited[attr.Name] = true

		values, err := r.store.DistinctValues(ctx, attr.Name, filters)
		if err != nil {
			return Step{}, fmt.Errorf("distinct values for %s: %w", attr.Name, err)
		}
		if len(values) == 0 {
			continue
		}

		opts := make([]Option, 0, len(values))
		for _, v := range values {
			opts = append(opts, Option{Value: v, Label: catalog.Label(v)})
		}
		sort.Slice(opts, func(i, j int) bool { return opts[i].Label < opts[j].Label })

		return Step{Attribute: attr.Name, Options: opts, Complete: false}, nil
	}

	return Step{Options: []Option{}, Complete: true}, nil
}

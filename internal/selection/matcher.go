package selection

import (
	"context"
	"fmt"

	"github.com/hydroshield/specbuilder-backend/internal/catalog"
)

// MaxRecommendations caps how many systems a single recommend call returns.
const MaxRecommendations = 50

// Matcher returns product systems matching a filter set.
type Matcher struct {
	store Store
}

func NewMatcher(store Store) *Matcher {
	return &Matcher{store: store}
}

// Recommend returns up to limit matching systems. A limit of zero, or one
// above the cap, falls back to MaxRecommendations. Zero matches is a normal
// empty result, never an error.
func (m *Matcher) Recommend(ctx context.Context, filters Filters, limit int) ([]SystemRecord, error) {
	if limit <= 0 || limit > MaxRecommendations {
		limit = MaxRecommendations
	}
	for name := range filters {
		if _, ok := catalog.ByName(name); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
		}
	}

	records, err := m.store.Match(ctx, filters, limit)
	if err != nil {
		return nil, fmt.Errorf("match systems: %w", err)
	}
	if records == nil {
		records = []SystemRecord{}
	}
	return records, nil
}

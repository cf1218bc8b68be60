package selection

import (
	"context"
	"strings"

	"github.com/hydroshield/specbuilder-backend/internal/catalog"
)

// MemoryStore is a Store over an in-memory record slice. It backs unit
// tests and the no-database dev mode; semantics mirror the Postgres store.
type MemoryStore struct {
	records []SystemRecord
}

func NewMemoryStore(records []SystemRecord) *MemoryStore {
	return &MemoryStore{records: records}
}

func (s *MemoryStore) DistinctValues(ctx context.Context, attr string, filters Filters) ([]any, error) {
	if _, ok := catalog.ByName(attr); !ok {
		return nil, ErrUnknownAttribute
	}

	seen := make(map[any]bool)
	out := make([]any, 0, 8)
	for _, rec := range s.records {
		if !matchesExact(rec, filters) {
			continue
		}
		v := rec.AttributeValue(attr)
		if v == nil {
			continue
		}
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *MemoryStore) Match(ctx context.Context, filters Filters, limit int) ([]SystemRecord, error) {
	return s.match(filters, limit, matchesFilters)
}

func (s *MemoryStore) MatchExact(ctx context.Context, filters Filters, limit int) ([]SystemRecord, error) {
	return s.match(filters, limit, matchesExact)
}

func (s *MemoryStore) match(filters Filters, limit int, pred func(SystemRecord, Filters) bool) ([]SystemRecord, error) {
	for name := range filters {
		if _, ok := catalog.ByName(name); !ok {
			return nil, ErrUnknownAttribute
		}
	}

	out := make([]SystemRecord, 0, 8)
	for _, rec := range s.records {
		if !pred(rec, filters) {
			continue
		}
		out = append(out, rec)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func matchesExact(rec SystemRecord, filters Filters) bool {
	for name, want := range filters {
		if rec.AttributeValue(name) != want {
			return false
		}
	}
	return true
}

// matchesFilters applies the recommendation semantics: array values match by
// membership, enum fields by equality, text fields by case-insensitive
// substring, everything else by equality.
func matchesFilters(rec SystemRecord, filters Filters) bool {
	for name, want := range filters {
		attr, ok := catalog.ByName(name)
		if !ok {
			return false
		}
		have := rec.AttributeValue(name)

		if arr, isArr := want.([]string); isArr {
			s, isStr := have.(string)
			if !isStr || !contains(arr, s) {
				return false
			}
			continue
		}

		if attr.Kind == catalog.KindText {
			needle, nOK := want.(string)
			hay, hOK := have.(string)
			if !nOK || !hOK {
				if have != want {
					return false
				}
				continue
			}
			if !strings.Contains(strings.ToLower(hay), strings.ToLower(needle)) {
				return false
			}
			continue
		}

		if have != want {
			return false
		}
	}
	return true
}

func contains(arr []string, s string) bool {
	for _, v := range arr {
		if v == s {
			return true
		}
	}
	return false
}

// Package selection implements the attribute-driven narrowing engine: given
// an accumulating filter set it computes the next attribute worth asking
// about, and once enough is chosen it matches product systems.
package selection

import (
	"context"
	"errors"
)

// Filters maps attribute name to a chosen value. Absent key = not yet
// chosen. Values are strings, bools, or []string for OR-matching.
type Filters map[string]any

// Clone returns a shallow copy; steps never mutate a caller's filter set.
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// SystemRecord is one persisted product-system definition. Subtype fields
// are nil when the system is not of the corresponding area type.
type SystemRecord struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Distributor       string  `json:"distributor"`
	AreaType          string  `json:"area_type"`
	RoofSubtype       *string `json:"roof_subtype,omitempty"`
	FoundationSubtype *string `json:"foundation_subtype,omitempty"`
	CivilWorkSubtype  *string `json:"civil_work_subtype,omitempty"`
	Substrate         string  `json:"substrate"`
	Material          string  `json:"material"`
	Insulated         bool    `json:"insulated"`
	Exposure          bool    `json:"exposure"`
	Attachment        string  `json:"attachment"`
}

// AttributeValue returns the record's value for a catalog attribute name.
// Nil subtype fields come back as untyped nil.
func (s SystemRecord) AttributeValue(name string) any {
	switch name {
	case "distributor":
		return s.Distributor
	case "area_type":
		return s.AreaType
	case "roof_subtype":
		return deref(s.RoofSubtype)
	case "foundation_subtype":
		return deref(s.FoundationSubtype)
	case "civil_work_subtype":
		return deref(s.CivilWorkSubtype)
	case "substrate":
		return s.Substrate
	case "material":
		return s.Material
	case "insulated":
		return s.Insulated
	case "exposure":
		return s.Exposure
	case "attachment":
		return s.Attachment
	}
	return nil
}

func deref(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// Store is the read surface the resolver and matcher need from the
// product-system datastore.
type Store interface {
	// DistinctValues returns the distinct non-null values of attr among
	// records matching every filter by exact equality.
	DistinctValues(ctx context.Context, attr string, filters Filters) ([]any, error)
	// Match returns records matching the filters under the per-kind
	// semantics (enum equality, text substring, array membership).
	Match(ctx context.Context, filters Filters, limit int) ([]SystemRecord, error)
	// MatchExact returns records matching every filter by exact equality.
	// Used by the legacy wizard's terminal lookup.
	MatchExact(ctx context.Context, filters Filters, limit int) ([]SystemRecord, error)
}

// ErrUnknownAttribute is returned when a filter or query names a field
// outside the catalog.
var ErrUnknownAttribute = errors.New("unknown selection attribute")

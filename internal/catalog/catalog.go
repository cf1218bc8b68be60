// Package catalog defines the ordered list of selection attributes a user
// walks through when picking a waterproofing system, and which of them are
// relevant under a given partial selection.
package catalog

import (
	"fmt"
	"strings"
)

// Kind controls how a filter value on the attribute is matched against
// stored systems.
type Kind int

const (
	// KindEnum fields match by exact equality.
	KindEnum Kind = iota
	// KindText fields match by case-insensitive substring containment.
	KindText
	// KindBool fields are native booleans; string forms ("yes"/"no",
	// "exposed"/"covered") are converted at the HTTP boundary.
	KindBool
)

// Attribute is one entry of the selection catalog. DependsOn/Equals express
// conditional relevance: the attribute only applies when the named filter
// holds that value. An empty DependsOn means always relevant.
type Attribute struct {
	Name      string
	Kind      Kind
	DependsOn string
	Equals    string
}

// attributes is the fixed catalog order. The order is the order the wizard
// offers attributes in; do not reorder without migrating saved selections.
var attributes = []Attribute{
	{Name: "distributor", Kind: KindText},
	{Name: "area_type", Kind: KindEnum},
	{Name: "roof_subtype", Kind: KindEnum, DependsOn: "area_type", Equals: "roof"},
	{Name: "foundation_subtype", Kind: KindEnum, DependsOn: "area_type", Equals: "foundation"},
	{Name: "civil_work_subtype", Kind: KindEnum, DependsOn: "area_type", Equals: "civil_work"},
	{Name: "substrate", Kind: KindText},
	{Name: "material", Kind: KindText},
	{Name: "insulated", Kind: KindBool},
	{Name: "exposure", Kind: KindBool},
	{Name: "attachment", Kind: KindEnum},
}

// Attributes returns the full catalog in order.
func Attributes() []Attribute {
	out := make([]Attribute, len(attributes))
	copy(out, attributes)
	return out
}

// ByName looks an attribute up by its field name.
func ByName(name string) (Attribute, bool) {
	for _, a := range attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Applies reports whether the attribute is relevant under the given partial
// filter set.
func (a Attribute) Applies(filters map[string]any) bool {
	if a.DependsOn == "" {
		return true
	}
	v, ok := filters[a.DependsOn]
	if !ok {
		return false
	}
	s, ok := v.(string)
	return ok && s == a.Equals
}

// EffectiveOrder returns the catalog order with entries inapplicable under
// the given filters removed.
func EffectiveOrder(filters map[string]any) []Attribute {
	out := make([]Attribute, 0, len(attributes))
	for _, a := range attributes {
		if a.Applies(filters) {
			out = append(out, a)
		}
	}
	return out
}

// ParseValue converts a raw string from the HTTP boundary into the native
// filter value for the attribute. Boolean attributes accept "true"/"false",
// "yes"/"no" and the legacy "exposed"/"covered" forms.
func (a Attribute) ParseValue(raw string) (any, error) {
	if a.Kind != KindBool {
		return raw, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "1", "exposed":
		return true, nil
	case "false", "no", "0", "covered":
		return false, nil
	}
	return nil, fmt.Errorf("attribute %s: cannot parse %q as boolean", a.Name, raw)
}

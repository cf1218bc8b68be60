// Package systems exposes persisted product systems and their layered
// bills of materials.
package systems

import "sort"

// LayerProduct is one product row inside a combination. Name is nil when
// back-office data entry has not filled it in yet.
type LayerProduct struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Layer       string  `json:"layer"`
	Distributor string  `json:"distributor"`
}

// LayerAssignment ties a product to one combination of a system. Multiple
// assignments sharing a combination number form one bill-of-materials
// variant.
type LayerAssignment struct {
	SystemID    string       `json:"system_id"`
	Combination int          `json:"combination"`
	Product     LayerProduct `json:"product"`
}

// CombinationGroup is one bill-of-materials variant ready for display.
type CombinationGroup struct {
	Combination int            `json:"combination"`
	Products    []LayerProduct `json:"products"`
}

// GroupByCombination groups layer assignments into combinations, sorted
// ascending by combination number. Combination numbers are grouped as found;
// nothing assumes they are dense or start at 1. Products without a name are
// dropped as incomplete data, but a combination emptied that way is still
// emitted so callers can show "no layers configured" instead of hiding it.
// When target is non-nil only that combination is returned.
func GroupByCombination(layers []LayerAssignment, target *int) []CombinationGroup {
	groups := make(map[int][]LayerProduct)
	for _, l := range layers {
		if target != nil && l.Combination != *target {
			continue
		}
		products := groups[l.Combination]
		if l.Product.Name != nil && *l.Product.Name != "" {
			products = append(products, l.Product)
		}
		groups[l.Combination] = products
	}

	out := make([]CombinationGroup, 0, len(groups))
	for combination, products := range groups {
		if products == nil {
			products = []LayerProduct{}
		}
		// Order within a variant follows the layer classification tag,
		// not insertion order.
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Layer != products[j].Layer {
				return products[i].Layer < products[j].Layer
			}
			return *products[i].Name < *products[j].Name
		})
		out = append(out, CombinationGroup{Combination: combination, Products: products})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Combination < out[j].Combination })
	return out
}

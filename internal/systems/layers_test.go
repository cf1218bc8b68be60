package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func layer(combination int, name *string, tag string) LayerAssignment {
	id := ""
	if name != nil {
		id = "p-" + *name
	}
	return LayerAssignment{
		SystemID:    "ps-1",
		Combination: combination,
		Product:     LayerProduct{ID: id, Name: name, Layer: tag, Distributor: "Bayset"},
	}
}

func TestGroupByCombinationDropsNamelessProducts(t *testing.T) {
	groups := GroupByCombination([]LayerAssignment{
		layer(1, strPtr("A"), "membrane"),
		layer(1, nil, "primer"),
	}, nil)

	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].Combination)
	require.Len(t, groups[0].Products, 1)
	assert.Equal(t, "A", *groups[0].Products[0].Name)
}

func TestGroupByCombinationKeepsEmptyCombinations(t *testing.T) {
	// A combination whose every product is nameless still shows up, so the
	// UI can say "no layers configured" instead of hiding it.
	groups := GroupByCombination([]LayerAssignment{
		layer(1, strPtr("A"), "membrane"),
		layer(2, nil, "primer"),
	}, nil)

	require.Len(t, groups, 2)
	assert.Equal(t, 2, groups[1].Combination)
	assert.NotNil(t, groups[1].Products)
	assert.Empty(t, groups[1].Products)
}

func TestGroupByCombinationSortsSparseNumbers(t *testing.T) {
	// Combination numbers need not be dense or start at 1.
	groups := GroupByCombination([]LayerAssignment{
		layer(7, strPtr("C"), "membrane"),
		layer(2, strPtr("A"), "membrane"),
		layer(4, strPtr("B"), "membrane"),
	}, nil)

	require.Len(t, groups, 3)
	assert.Equal(t, 2, groups[0].Combination)
	assert.Equal(t, 4, groups[1].Combination)
	assert.Equal(t, 7, groups[2].Combination)
}

func TestGroupByCombinationFiltersToTarget(t *testing.T) {
	target := 2
	groups := GroupByCombination([]LayerAssignment{
		layer(1, strPtr("A"), "membrane"),
		layer(2, strPtr("B"), "membrane"),
		layer(2, strPtr("C"), "primer"),
	}, &target)

	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Combination)
	assert.Len(t, groups[0].Products, 2)
}

func TestGroupByCombinationOrdersByLayerTag(t *testing.T) {
	groups := GroupByCombination([]LayerAssignment{
		layer(1, strPtr("Top"), "topcoat"),
		layer(1, strPtr("Base"), "membrane"),
		layer(1, strPtr("Prime"), "base_primer"),
	}, nil)

	require.Len(t, groups, 1)
	tags := []string{}
	for _, p := range groups[0].Products {
		tags = append(tags, p.Layer)
	}
	assert.Equal(t, []string{"base_primer", "membrane", "topcoat"}, tags)
}

func TestGroupByCombinationRoundTrip(t *testing.T) {
	input := []LayerAssignment{
		layer(1, strPtr("A"), "membrane"),
		layer(1, strPtr("B"), "primer"),
		layer(3, strPtr("C"), "membrane"),
		layer(3, nil, "topcoat"), // dropped: no name
	}

	groups := GroupByCombination(input, nil)

	type pair struct {
		combination int
		name        string
	}
	got := map[pair]bool{}
	for _, g := range groups {
		for _, p := range g.Products {
			got[pair{g.Combination, *p.Name}] = true
		}
	}

	want := map[pair]bool{
		{1, "A"}: true,
		{1, "B"}: true,
		{3, "C"}: true,
	}
	assert.Equal(t, want, got)
}

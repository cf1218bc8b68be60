package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveOrder(t *testing.T) {
	t.Run("no area chosen hides every subtype", func(t *testing.T) {
		names := attributeNames(EffectiveOrder(map[string]any{}))
		assert.Equal(t, []string{
			"distributor", "area_type", "substrate", "material",
			"insulated", "exposure", "attachment",
		}, names)
	})

	t.Run("roof area exposes only the roof subtype", func(t *testing.T) {
		names := attributeNames(EffectiveOrder(map[string]any{"area_type": "roof"}))
		assert.Contains(t, names, "roof_subtype")
		assert.NotContains(t, names, "foundation_subtype")
		assert.NotContains(t, names, "civil_work_subtype")
	})

	t.Run("subtype follows area_type in order", func(t *testing.T) {
		names := attributeNames(EffectiveOrder(map[string]any{"area_type": "foundation"}))
		assert.Equal(t, []string{
			"distributor", "area_type", "foundation_subtype", "substrate",
			"material", "insulated", "exposure", "attachment",
		}, names)
	})
}

func TestByName(t *testing.T) {
	attr, ok := ByName("insulated")
	require.True(t, ok)
	assert.Equal(t, KindBool, attr.Kind)

	_, ok = ByName("color")
	assert.False(t, ok)
}

func TestParseValue(t *testing.T) {
	insulated, _ := ByName("insulated")
	exposure, _ := ByName("exposure")
	substrate, _ := ByName("substrate")

	for raw, want := range map[string]any{
		"yes": true, "no": false,
		"true": true, "false": false,
	} {
		got, err := insulated.ParseValue(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got, "raw=%s", raw)
	}

	// Legacy wizard forms for exposure.
	got, err := exposure.ParseValue("exposed")
	require.NoError(t, err)
	assert.Equal(t, true, got)

	got, err = exposure.ParseValue("covered")
	require.NoError(t, err)
	assert.Equal(t, false, got)

	_, err = insulated.ParseValue("maybe")
	assert.Error(t, err)

	got, err = substrate.ParseValue("concrete")
	require.NoError(t, err)
	assert.Equal(t, "concrete", got)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Civil work", Label("civil_work"))
	assert.Equal(t, "Yes", Label(true))
	assert.Equal(t, "No", Label(false))
	assert.Equal(t, "Unknown", Label(nil))
	assert.Equal(t, "Concrete", Label("concrete"))
}

func attributeNames(attrs []Attribute) []string {
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, a.Name)
	}
	return out
}

package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydroshield/specbuilder-backend/internal/selection"
)

func TestAdvanceWalksTheLinearSequence(t *testing.T) {
	state := NewState()
	assert.Equal(t, "system", state.Step)

	answers := []string{"Bayset", "roof", "flat", "concrete", "bitumen_torch", "no", "exposed", "torch-applied"}
	for _, answer := range answers {
		next, err := Advance(state, answer)
		require.NoError(t, err)
		state = next
	}

	assert.Equal(t, "result", state.Step)
	assert.Equal(t, map[string]any{
		"distributor":  "Bayset",
		"area_type":    "roof",
		"roof_subtype": "flat",
		"substrate":    "concrete",
		"material":     "bitumen_torch",
		"insulated":    false,
		"exposure":     true,
		"attachment":   "torch-applied",
	}, state.Filters)
}

func TestAdvanceDoesNotMutateInputState(t *testing.T) {
	state := NewState()
	next, err := Advance(state, "Bayset")
	require.NoError(t, err)

	assert.Empty(t, state.Filters)
	assert.Equal(t, "Bayset", next.Filters["distributor"])
}

func TestTypeStepResolvesSubtypePerArea(t *testing.T) {
	cases := map[string]string{
		"roof":       "roof_subtype",
		"foundation": "foundation_subtype",
		"civil_work": "civil_work_subtype",
	}
	for area, field := range cases {
		attr, ok := StepType.Field(map[string]any{"area_type": area})
		require.True(t, ok, "area=%s", area)
		assert.Equal(t, field, attr.Name)
	}
}

func TestTypeStepSkipsAreasWithoutSubtypes(t *testing.T) {
	state := State{Step: "type", Filters: map[string]any{
		"distributor": "Bayset",
		"area_type":   "wall",
	}}

	next, err := Advance(state, "ignored")
	require.NoError(t, err)
	assert.Equal(t, "substrate", next.Step)
	// Nothing was stored for the skipped step.
	assert.Len(t, next.Filters, 2)
}

func TestAdvanceRejectsCompletedWizard(t *testing.T) {
	_, err := Advance(State{Step: "result", Filters: map[string]any{}}, "x")
	assert.Error(t, err)
}

func TestAdvanceRejectsUnknownStep(t *testing.T) {
	_, err := Advance(State{Step: "summary", Filters: map[string]any{}}, "x")
	assert.Error(t, err)
}

func TestResultExactMatch(t *testing.T) {
	store := selection.NewMemoryStore([]selection.SystemRecord{
		{
			ID: "ps-2", Name: "BaySeal TA", Distributor: "Bayset",
			AreaType: "roof", Substrate: "concrete", Material: "bitumen_torch",
			Insulated: false, Exposure: true, Attachment: "torch-applied",
		},
	})

	state := State{Step: "result", Filters: map[string]any{
		"distributor": "Bayset",
		"area_type":   "roof",
		"substrate":   "concrete",
		"material":    "bitumen_torch",
		"insulated":   false,
		"exposure":    true,
		"attachment":  "torch-applied",
	}}

	match := func(f selection.Filters, limit int) ([]selection.SystemRecord, error) {
		return store.MatchExact(context.Background(), f, limit)
	}

	system, err := Result(state, match)
	require.NoError(t, err)
	require.NotNil(t, system)
	assert.Equal(t, "ps-2", system.ID)

	// A near-miss (different material) is a nil result, not an error.
	state.Filters["material"] = "bitumen"
	system, err = Result(state, match)
	require.NoError(t, err)
	assert.Nil(t, system)
}

func TestResultRequiresTerminalStep(t *testing.T) {
	_, err := Result(State{Step: "substrate", Filters: map[string]any{}}, nil)
	assert.Error(t, err)
}

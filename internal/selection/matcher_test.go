package selection

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendMonotonicity(t *testing.T) {
	matcher := NewMatcher(NewMemoryStore(testRecords()))
	ctx := context.Background()

	f1 := Filters{"distributor": "Bayset"}
	f2 := Filters{"distributor": "Bayset", "area_type": "roof"}

	broad, err := matcher.Recommend(ctx, f1, 0)
	require.NoError(t, err)
	narrow, err := matcher.Recommend(ctx, f2, 0)
	require.NoError(t, err)

	require.NotEmpty(t, narrow)
	broadIDs := make(map[string]bool)
	for _, rec := range broad {
		broadIDs[rec.ID] = true
	}
	for _, rec := range narrow {
		assert.True(t, broadIDs[rec.ID], "narrow result %s missing from broad result", rec.ID)
	}
}

func TestRecommendZeroMatchesIsEmptyNotError(t *testing.T) {
	matcher := NewMatcher(NewMemoryStore(testRecords()))

	got, err := matcher.Recommend(context.Background(), Filters{
		"distributor": "Bayset",
		"area_type":   "wall",
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, []SystemRecord{}, got)
}

func TestRecommendTextFieldsMatchBySubstring(t *testing.T) {
	matcher := NewMatcher(NewMemoryStore(testRecords()))

	// "bitumen" should catch both "bitumen" and "bitumen_torch".
	got, err := matcher.Recommend(context.Background(), Filters{"material": "BITUMEN"}, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRecommendArrayValuesMatchByMembership(t *testing.T) {
	matcher := NewMatcher(NewMemoryStore(testRecords()))

	got, err := matcher.Recommend(context.Background(), Filters{
		"attachment": []string{"self-adhered", "torch-applied"},
	}, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ps-1", got[0].ID)
	assert.Equal(t, "ps-2", got[1].ID)
}

func TestRecommendEnumFieldsMatchExactly(t *testing.T) {
	matcher := NewMatcher(NewMemoryStore(testRecords()))

	// "roof" is an enum value; a substring like "oo" must not match.
	got, err := matcher.Recommend(context.Background(), Filters{"area_type": "oo"}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommendCapsResults(t *testing.T) {
	records := make([]SystemRecord, 0, MaxRecommendations+10)
	for i := 0; i < MaxRecommendations+10; i++ {
		records = append(records, SystemRecord{
			ID: fmt.Sprintf("ps-%03d", i), Name: "Bulk", Distributor: "Bayset",
			AreaType: "roof", Substrate: "concrete", Material: "bitumen",
			Attachment: "self-adhered",
		})
	}
	matcher := NewMatcher(NewMemoryStore(records))

	got, err := matcher.Recommend(context.Background(), Filters{"distributor": "Bayset"}, 0)
	require.NoError(t, err)
	assert.Len(t, got, MaxRecommendations)

	got, err = matcher.Recommend(context.Background(), Filters{"distributor": "Bayset"}, 5)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

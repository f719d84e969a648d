package inventory

import (
	"testing"

	"github.com/jonathan/outfit-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleWardrobe(t *testing.T) {
	w := SampleWardrobe()
	stats := w.Stats()

	assert.Equal(t, 80, stats.TotalItems)
	assert.Equal(t, 72, stats.AvailableItems)
	assert.Equal(t, 8, stats.UnavailableItems)

	assert.Equal(t, 20, stats.TotalByCategory[types.CategoryBaseLayer])
	assert.Equal(t, 15, stats.TotalByCategory[types.CategoryLowerLayer])
	assert.Equal(t, 12, stats.TotalByCategory[types.CategoryOuterLayer])
	assert.Equal(t, 15, stats.TotalByCategory[types.CategoryFootwear])
	assert.Equal(t, 18, stats.TotalByCategory[types.CategoryAccessory])

	assert.Equal(t, 18, stats.ByCategory[types.CategoryBaseLayer])
	assert.Equal(t, 13, stats.ByCategory[types.CategoryLowerLayer])
	assert.Equal(t, 11, stats.ByCategory[types.CategoryOuterLayer])
	assert.Equal(t, 13, stats.ByCategory[types.CategoryFootwear])
	assert.Equal(t, 17, stats.ByCategory[types.CategoryAccessory])

	assert.Equal(t, 3, stats.UnavailableBreakdown["in laundry"])
}

func TestSampleWardrobe_UnavailableItems(t *testing.T) {
	w := SampleWardrobe()

	coat, ok := w.Get(203)
	require.True(t, ok)
	assert.Equal(t, "Wool Coat", coat.Name)
	assert.False(t, coat.Available)
	assert.Equal(t, "at dry cleaner", coat.UnavailableReason)

	heels, ok := w.Get(305)
	require.True(t, ok)
	assert.Equal(t, "broken heel", heels.UnavailableReason)
}

func TestSampleWardrobe_ItemsAreValid(t *testing.T) {
	for _, item := range SampleWardrobe().Items() {
		assert.NoError(t, item.Validate(), "item %d", item.ID)
	}
}

func TestSampleWardrobe_Independent(t *testing.T) {
	a := SampleWardrobe()
	b := SampleWardrobe()

	_, err := a.MarkAvailable(203)
	require.NoError(t, err)

	coat, _ := b.Get(203)
	assert.False(t, coat.Available)
}

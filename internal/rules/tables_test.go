package rules

import (
	"testing"

	"github.com/jonathan/outfit-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CoversRecognizedTags(t *testing.T) {
	tables := Default()

	for _, w := range types.KnownWeathers {
		_, ok := tables.WeatherRule(w)
		assert.True(t, ok, "missing weather rule for %s", w)
	}
	for _, o := range types.KnownOccasions {
		rule, ok := tables.OccasionRule(o)
		assert.True(t, ok, "missing occasion rule for %s", o)
		assert.NotEmpty(t, rule.Description)
	}

	assert.Len(t, tables.Colors, 17)
	assert.Len(t, tables.HarmonicPairs, 15)
}

func TestDefault_UnknownTagsArePermissive(t *testing.T) {
	tables := Default()

	_, ok := tables.WeatherRule("humid")
	assert.False(t, ok)

	_, ok = tables.OccasionRule("wedding")
	assert.False(t, ok)
}

func TestDefault_WeatherBounds(t *testing.T) {
	tables := Default()

	hot, _ := tables.WeatherRule(types.WeatherHot)
	require.NotNil(t, hot.MaxLayers)
	assert.Equal(t, 2, *hot.MaxLayers)
	assert.Nil(t, hot.MinLayers)
	assert.Contains(t, hot.Unsuitable, "coat")
	assert.Contains(t, hot.Unsuitable, "heavy")

	cold, _ := tables.WeatherRule(types.WeatherCold)
	require.NotNil(t, cold.MinLayers)
	assert.Equal(t, 3, *cold.MinLayers)
	assert.Nil(t, cold.MaxLayers)
}

func TestDefault_OccasionBounds(t *testing.T) {
	tables := Default()

	sporty, _ := tables.OccasionRule(types.OccasionSporty)
	require.NotNil(t, sporty.MaxFormality)
	assert.Equal(t, 4.0, *sporty.MaxFormality)
	assert.Nil(t, sporty.MinFormality)

	business, _ := tables.OccasionRule(types.OccasionBusiness)
	require.NotNil(t, business.MinFormality)
	require.NotNil(t, business.MaxFormality)
	assert.Equal(t, 5.0, *business.MinFormality)
	assert.Equal(t, 8.0, *business.MaxFormality)
}

func TestCompatible(t *testing.T) {
	tables := Default()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"same color", "orange", "orange", true},
		{"listed forward", "black", "white", true},
		{"listed only in reverse", "light blue", "navy", true},
		{"wildcard on white", "white", "orange", true},
		{"wildcard reached from the other side", "orange", "white", true},
		{"unlisted both ways", "pink", "orange", false},
		{"unknown colors", "teal", "mauve", false},
		{"red and green clash", "red", "green", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tables.Compatible(tt.a, tt.b))
			assert.Equal(t, tt.want, tables.Compatible(tt.b, tt.a), "relation must be symmetric")
		})
	}
}

func TestHarmonicMatch(t *testing.T) {
	tables := Default()

	assert.True(t, tables.HarmonicMatch(map[string]bool{"black": true, "white": true}))
	assert.True(t, tables.HarmonicMatch(map[string]bool{"navy": true, "cream": true, "pink": true}))
	assert.False(t, tables.HarmonicMatch(map[string]bool{"black": true}))
	assert.False(t, tables.HarmonicMatch(map[string]bool{"pink": true, "purple": true}))
}

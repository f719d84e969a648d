package ranking

import (
	"testing"

	"github.com/jonathan/outfit-planner/internal/types"
	"github.com/stretchr/testify/assert"
)

func colored(colors ...string) []types.Item {
	items := make([]types.Item, 0, len(colors))
	for i, c := range colors {
		items = append(items, types.Item{ID: i + 1, Name: "Item", Color: c, Style: "casual", Formality: 5, Available: true})
	}
	return items
}

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 0.70, w.ColorHarmony)
	assert.Equal(t, 0.30, w.Preference)
	assert.NoError(t, w.Validate())
}

func TestWeights_Validate(t *testing.T) {
	assert.Error(t, Weights{ColorHarmony: 0.5, Preference: 0.6}.Validate())
	assert.Error(t, Weights{ColorHarmony: 1.2, Preference: -0.2}.Validate())
	assert.NoError(t, Weights{ColorHarmony: 1, Preference: 0}.Validate())
}

func TestColorHarmony(t *testing.T) {
	s := NewScorer(nil, DefaultWeights())

	tests := []struct {
		name   string
		colors []string
		want   float64
	}{
		{"single color", []string{"teal", "teal", "teal"}, 1.0},
		{"curated pair", []string{"black", "white", "black"}, 1.0},
		{"curated pair with extra color", []string{"black", "white", "orange"}, 1.0},
		{"curated pair in reverse wording", []string{"blue", "white"}, 1.0},
		{"compatible non-curated pair", []string{"green", "gold"}, 1.0},
		{"incompatible pair", []string{"pink", "orange"}, 0.0},
		{"one of three pairs compatible", []string{"pink", "silver", "orange"}, 1.0 / 3.0},
		{"four colors", []string{"black", "white", "navy", "gray"}, 0.5},
		{"five colors", []string{"black", "white", "navy", "gray", "red"}, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.ColorHarmony(colored(tt.colors...)), 1e-9)
		})
	}
}

func TestColorHarmony_PairFraction(t *testing.T) {
	s := NewScorer(nil, DefaultWeights())

	// green-gold compatible, green-purple not, gold-purple not: 1 of 3
	assert.InDelta(t, 1.0/3.0, s.ColorHarmony(colored("green", "gold", "purple")), 1e-9)

	// pink-silver, silver-purple compatible, pink-purple not: 2 of 3
	assert.InDelta(t, 2.0/3.0, s.ColorHarmony(colored("pink", "silver", "purple")), 1e-9)
}

func TestPreferenceScore(t *testing.T) {
	items := []types.Item{
		{ID: 1, Color: "navy", Style: "casual"},
		{ID: 2, Color: "white", Style: "formal"},
		{ID: 3, Color: "black", Style: "formal"},
	}

	assert.Equal(t, 0.5, PreferenceScore(items, nil))
	assert.Equal(t, 0.5, PreferenceScore(items, &types.Preferences{}))
	assert.Equal(t, 0.5, PreferenceScore(items, &types.Preferences{PreferredColors: []string{"", "  "}}))

	// one of three items is navy
	navy := &types.Preferences{PreferredColors: []string{"navy"}}
	assert.InDelta(t, 0.6, PreferenceScore(items, navy), 1e-9)

	// two of three items are formal
	formal := &types.Preferences{PreferredStyles: []string{"formal"}}
	assert.InDelta(t, 0.5+2.0/3.0*0.2, PreferenceScore(items, formal), 1e-9)

	// full match on both is exactly 1.0
	all := &types.Preferences{
		PreferredColors: []string{"navy", "white", "black"},
		PreferredStyles: []string{"casual", "formal"},
	}
	assert.InDelta(t, 1.0, PreferenceScore(items, all), 1e-9)

	// matching is case-insensitive
	assert.InDelta(t, 0.6, PreferenceScore(items, &types.Preferences{PreferredColors: []string{" Navy "}}), 1e-9)
}

func TestScore_Weighted(t *testing.T) {
	s := NewScorer(nil, DefaultWeights())
	items := []types.Item{
		{ID: 1, Color: "navy", Style: "casual"},
		{ID: 2, Color: "white", Style: "casual"},
		{ID: 3, Color: "white", Style: "casual"},
	}

	// navy+white is a curated pair: harmony 1.0, preference 0.6
	got := s.Breakdown(items, &types.Preferences{PreferredColors: []string{"navy"}})
	assert.InDelta(t, 1.0, got.ColorHarmony, 1e-9)
	assert.InDelta(t, 0.6, got.Preference, 1e-9)
	assert.InDelta(t, 0.7+0.3*0.6, got.Total, 1e-9)
	assert.InDelta(t, got.Total, s.Score(items, &types.Preferences{PreferredColors: []string{"navy"}}), 1e-9)

	// no preferences: 0.7 + 0.15
	assert.InDelta(t, 0.85, s.Score(items, nil), 1e-9)
}

func TestScore_AlwaysInUnitRange(t *testing.T) {
	s := NewScorer(nil, DefaultWeights())
	cases := [][]types.Item{
		colored("teal"),
		colored("pink", "orange"),
		colored("black", "white", "navy", "gray", "red", "green"),
		colored(),
	}
	for _, items := range cases {
		score := s.Score(items, &types.Preferences{PreferredColors: []string{"pink"}, PreferredStyles: []string{"casual"}})
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

// Package ranking scores valid outfit combinations and orders them by desirability.
package ranking

import (
	"fmt"
	"math"

	"github.com/jonathan/outfit-planner/internal/rules"
	"github.com/jonathan/outfit-planner/internal/types"
	"github.com/jonathan/outfit-planner/internal/validation"
)

// Default weights for scoring components
const (
	colorHarmonyWeight = 0.70
	preferenceWeight   = 0.30
)

// Preference component shape
const (
	preferenceBaseline  = 0.5
	preferredColorBonus = 0.3
	preferredStyleBonus = 0.2
	tooManyColorsScore  = 0.2
	fourColorsScore     = 0.5
)

// Weights sets the relative importance of the score components.
type Weights struct {
	ColorHarmony float64 `json:"color_harmony"`
	Preference   float64 `json:"preference"`
}

// DefaultWeights returns the 70/30 harmony/preference split.
func DefaultWeights() Weights {
	return Weights{
		ColorHarmony: colorHarmonyWeight,
		Preference:   preferenceWeight,
	}
}

// Validate checks that weights are non-negative and sum to 1.0.
func (w Weights) Validate() error {
	if w.ColorHarmony < 0 || w.Preference < 0 {
		return fmt.Errorf("negative weight: harmony=%f preference=%f", w.ColorHarmony, w.Preference)
	}
	if sum := w.ColorHarmony + w.Preference; math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", sum)
	}
	return nil
}

// Breakdown holds the components behind a score.
type Breakdown struct {
	ColorHarmony float64 `json:"color_harmony"`
	Preference   float64 `json:"preference"`
	Total        float64 `json:"total"`
}

// Scorer computes soft desirability scores. It holds no mutable state.
type Scorer struct {
	tables  *rules.Tables
	weights Weights
}

// NewScorer creates a Scorer. Nil tables fall back to rules.Default().
func NewScorer(tables *rules.Tables, weights Weights) *Scorer {
	if tables == nil {
		tables = rules.Default()
	}
	return &Scorer{tables: tables, weights: weights}
}

// Score returns the weighted score in [0, 1] for a combination that already
// passed hard validation.
func (s *Scorer) Score(items []types.Item, prefs *types.Preferences) float64 {
	return s.Breakdown(items, prefs).Total
}

// Breakdown returns the individual components alongside the weighted total.
func (s *Scorer) Breakdown(items []types.Item, prefs *types.Preferences) Breakdown {
	harmony := s.ColorHarmony(items)
	preference := PreferenceScore(items, prefs)
	total := s.weights.ColorHarmony*harmony + s.weights.Preference*preference

	// Ensure score is in valid range
	total = math.Max(0, math.Min(1, total))

	return Breakdown{ColorHarmony: harmony, Preference: preference, Total: total}
}

// ColorHarmony scores how well the distinct colors of a combination go together.
func (s *Scorer) ColorHarmony(items []types.Item) float64 {
	colors := validation.DistinctColors(items)

	switch {
	case len(colors) > 4:
		return tooManyColorsScore
	case len(colors) == 4:
		return fourColorsScore
	}

	set := make(map[string]bool, len(colors))
	for _, c := range colors {
		set[c] = true
	}
	if s.tables.HarmonicMatch(set) {
		return 1.0
	}

	if len(colors) < 2 {
		return 1.0
	}

	compatible, pairs := 0, 0
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			pairs++
			if s.tables.Compatible(colors[i], colors[j]) {
				compatible++
			}
		}
	}
	return float64(compatible) / float64(pairs)
}

// PreferenceScore rewards items whose color or style the caller prefers.
// Missing or empty preferences yield the neutral baseline.
func PreferenceScore(items []types.Item, prefs *types.Preferences) float64 {
	score := preferenceBaseline
	if prefs.IsEmpty() || len(items) == 0 {
		return score
	}

	n := float64(len(items))
	if colors := toSet(prefs.PreferredColors); len(colors) > 0 {
		matched := 0
		for _, item := range items {
			if colors[types.NormalizeTag(item.Color)] {
				matched++
			}
		}
		score += float64(matched) / n * preferredColorBonus
	}
	if styles := toSet(prefs.PreferredStyles); len(styles) > 0 {
		matched := 0
		for _, item := range items {
			if styles[types.NormalizeTag(item.Style)] {
				matched++
			}
		}
		score += float64(matched) / n * preferredStyleBonus
	}

	return math.Min(1.0, score)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v = types.NormalizeTag(v); v != "" {
			set[v] = true
		}
	}
	return set
}

// Package rules holds the static rule tables that define outfit validity and color harmony.
package rules

import (
	"github.com/jonathan/outfit-planner/internal/types"
)

// Wildcard is the color-compatibility entry that matches every color.
const Wildcard = "any"

// WeatherRule constrains item names and layer counts for one weather tag.
// A nil bound is not enforced.
type WeatherRule struct {
	Unsuitable         []string
	Suitable           []string
	PreferredMaterials []string
	MinLayers          *int
	MaxLayers          *int
}

// OccasionRule bounds the mean formality of a combination. A nil bound is not enforced.
type OccasionRule struct {
	MinFormality   *float64
	MaxFormality   *float64
	PreferredItems []string
	Description    string
}

// Tables bundles every rule table consulted by validation and scoring.
type Tables struct {
	Weather       map[types.Weather]WeatherRule
	Occasion      map[types.Occasion]OccasionRule
	Colors        map[string][]string
	HarmonicPairs [][2]string
}

// WeatherRule returns the rule for w. ok is false for an unrecognized tag,
// which callers treat as the permissive default.
func (t *Tables) WeatherRule(w types.Weather) (WeatherRule, bool) {
	rule, ok := t.Weather[w]
	return rule, ok
}

// OccasionRule returns the rule for o. ok is false for an unrecognized tag,
// which callers treat as the permissive default.
func (t *Tables) OccasionRule(o types.Occasion) (OccasionRule, bool) {
	rule, ok := t.Occasion[o]
	return rule, ok
}

func intBound(v int) *int { return &v }

func floatBound(v float64) *float64 { return &v }

// Default returns the built-in rule tables.
func Default() *Tables {
	return &Tables{
		Weather: map[types.Weather]WeatherRule{
			types.WeatherHot: {
				Suitable:           []string{"t-shirt", "tank top", "shorts", "sandals", "dress", "skirt", "flip flops"},
				Unsuitable:         []string{"coat", "boots", "sweater", "jacket", "long pants", "heavy"},
				MaxLayers:          intBound(2),
				PreferredMaterials: []string{"cotton", "linen", "light"},
			},
			types.WeatherWarm: {
				Suitable:           []string{"shirt", "blouse", "jeans", "chinos", "sneakers", "light jacket", "cardigan"},
				Unsuitable:         []string{"heavy coat", "winter boots", "thick sweater", "puffer"},
				MaxLayers:          intBound(3),
				PreferredMaterials: []string{"cotton", "denim", "light wool"},
			},
			types.WeatherCool: {
				Suitable:           []string{"sweater", "cardigan", "jeans", "jacket", "closed shoes", "boots", "long pants"},
				Unsuitable:         []string{"sandals", "shorts", "tank top", "flip flops"},
				MinLayers:          intBound(2),
				PreferredMaterials: []string{"wool", "denim", "leather"},
			},
			types.WeatherCold: {
				Suitable:           []string{"coat", "heavy sweater", "boots", "long pants", "scarf", "gloves", "jacket"},
				Unsuitable:         []string{"sandals", "shorts", "t-shirt", "tank top", "flip flops"},
				MinLayers:          intBound(3),
				PreferredMaterials: []string{"wool", "fleece", "down", "leather", "heavy"},
			},
		},
		Occasion: map[types.Occasion]OccasionRule{
			types.OccasionFormal: {
				MinFormality:   floatBound(7),
				PreferredItems: []string{"dress shirt", "suit", "dress shoes", "tie", "blazer"},
				Description:    "Business meetings, formal events, important presentations",
			},
			types.OccasionBusiness: {
				MinFormality:   floatBound(5),
				MaxFormality:   floatBound(8),
				PreferredItems: []string{"blazer", "dress shirt", "chinos", "dress shoes", "button down"},
				Description:    "Business casual, office environment, client meetings",
			},
			types.OccasionCasual: {
				MaxFormality:   floatBound(6),
				PreferredItems: []string{"t-shirt", "jeans", "sneakers", "sweater", "casual shirt"},
				Description:    "Weekend activities, casual social events, relaxed environments",
			},
			types.OccasionSporty: {
				MaxFormality:   floatBound(4),
				PreferredItems: []string{"athletic wear", "joggers", "hoodie", "running shoes"},
				Description:    "Exercise, sports activities, athletic events",
			},
			types.OccasionParty: {
				MinFormality:   floatBound(6),
				PreferredItems: []string{"dress", "heels", "jewelry", "blazer", "stylish top"},
				Description:    "Social parties, evening events, celebrations",
			},
		},
		Colors: map[string][]string{
			"black":  {"white", "gray", "navy", "red", "blue", "silver", "gold", "beige", "cream"},
			"white":  {"black", "navy", "blue", "gray", "brown", "red", "green", "pink", "purple", Wildcard},
			"navy":   {"white", "gray", "beige", "light blue", "cream", "silver", "brown"},
			"gray":   {"white", "black", "navy", "pink", "yellow", "blue", "purple", "silver"},
			"brown":  {"white", "beige", "cream", "navy", "tan", "orange", "gold", "green"},
			"beige":  {"brown", "white", "navy", "black", "cream", "tan", "gold"},
			"red":    {"black", "white", "navy", "gray", "beige", "cream"},
			"blue":   {"white", "black", "gray", "beige", "brown", "navy", "silver"},
			"green":  {"white", "beige", "brown", "navy", "cream", "gold"},
			"pink":   {"white", "gray", "navy", "black", "silver"},
			"yellow": {"white", "gray", "navy", "black", "brown"},
			"purple": {"white", "gray", "black", "silver"},
			"orange": {"brown", "beige", "white", "navy", "cream"},
			"cream":  {"brown", "beige", "navy", "white", "gold"},
			"tan":    {"brown", "beige", "white", "navy", "cream"},
			"silver": {"black", "white", "gray", "navy", "blue"},
			"gold":   {"black", "brown", "beige", "white", "cream"},
		},
		HarmonicPairs: [][2]string{
			{"black", "white"}, {"navy", "white"}, {"brown", "beige"},
			{"gray", "white"}, {"black", "gray"}, {"navy", "beige"},
			{"brown", "cream"}, {"black", "red"}, {"navy", "gray"},
			{"white", "blue"}, {"beige", "brown"}, {"gray", "black"},
			{"navy", "cream"}, {"white", "navy"}, {"black", "beige"},
		},
	}
}

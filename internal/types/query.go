//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Weather is the weather tag of a query.
type Weather string

// Recognized weather tags
const (
	WeatherHot  Weather = "hot"
	WeatherWarm Weather = "warm"
	WeatherCool Weather = "cool"
	WeatherCold Weather = "cold"
)

// KnownWeathers lists the weather tags the rule tables recognize.
var KnownWeathers = []Weather{WeatherHot, WeatherWarm, WeatherCool, WeatherCold}

// Known reports whether w is a recognized weather tag.
func (w Weather) Known() bool {
	for _, k := range KnownWeathers {
		if w == k {
			return true
		}
	}
	return false
}

// Occasion is the occasion tag of a query.
type Occasion string

// Recognized occasion tags
const (
	OccasionFormal   Occasion = "formal"
	OccasionBusiness Occasion = "business"
	OccasionCasual   Occasion = "casual"
	OccasionSporty   Occasion = "sporty"
	OccasionParty    Occasion = "party"
)

// KnownOccasions lists the occasion tags the rule tables recognize.
var KnownOccasions = []Occasion{OccasionFormal, OccasionBusiness, OccasionCasual, OccasionSporty, OccasionParty}

// Known reports whether o is a recognized occasion tag.
func (o Occasion) Known() bool {
	for _, k := range KnownOccasions {
		if o == k {
			return true
		}
	}
	return false
}

// Preferences holds optional soft preferences for a query.
type Preferences struct {
	PreferredColors []string `json:"preferred_colors,omitempty"`
	PreferredStyles []string `json:"preferred_styles,omitempty"`
}

// IsEmpty reports whether no preference is supplied. Safe on a nil receiver.
func (p *Preferences) IsEmpty() bool {
	return p == nil || (len(p.PreferredColors) == 0 && len(p.PreferredStyles) == 0)
}

// Query is the set of parameters of a single recommendation request.
// The engine accepts any Weather/Occasion value; Validate is for callers
// that want strict checking against the recognized sets.
type Query struct {
	Weather     Weather      `json:"weather" validate:"required,oneof=hot warm cool cold"`
	Occasion    Occasion     `json:"occasion" validate:"required,oneof=formal business casual sporty party"`
	Preferences *Preferences `json:"preferences,omitempty"`
	MaxResults  int          `json:"max_results" validate:"min=1,max=20"`
}

// Validate validates the Query using the validator.
func (q *Query) Validate() error {
	validate := validator.New()
	return validate.Struct(q)
}

// Max results bounds applied by callers before querying the engine.
const (
	DefaultMaxResults = 5
	MinMaxResults     = 1
	MaxMaxResults     = 20
)

// ClampMaxResults clamps n into [MinMaxResults, MaxMaxResults]; zero becomes the default.
func ClampMaxResults(n int) int {
	if n == 0 {
		return DefaultMaxResults
	}
	return min(max(n, MinMaxResults), MaxMaxResults)
}

//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Stage identifies which generation stage produced a recommendation.
type Stage string

// Generation stages
const (
	StageBase                    Stage = "base"
	StageWithOuterwear           Stage = "with_outerwear"
	StageWithAccessory           Stage = "with_accessory"
	StageWithMultipleAccessories Stage = "with_multiple_accessories"
)

// Title renders the stage tag for display ("with_outerwear" -> "With Outerwear").
func (s Stage) Title() string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Recommendation is one valid, scored combination.
type Recommendation struct {
	Items       []Item  `json:"items"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
	Stage       Stage   `json:"stage"`
}

// Colors returns the distinct colors of the combination in first-seen order.
func (r Recommendation) Colors() []string {
	return distinct(r.Items, func(i Item) string { return i.Color })
}

// Styles returns the distinct styles of the combination in first-seen order.
func (r Recommendation) Styles() []string {
	return distinct(r.Items, func(i Item) string { return i.Style })
}

func distinct(items []Item, key func(Item) string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		k := key(item)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// RecommendationSet is the ordered output of a single query.
type RecommendationSet struct {
	QueryID         uuid.UUID        `json:"query_id"`
	Weather         Weather          `json:"weather"`
	Occasion        Occasion         `json:"occasion"`
	Preferences     *Preferences     `json:"preferences,omitempty"`
	Checked         int              `json:"checked"`
	Valid           int              `json:"valid"`
	Recommendations []Recommendation `json:"recommendations"`
	ProcessingMS    int64            `json:"processing_ms"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// Package validation checks outfit combinations against the hard eligibility rules.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/outfit-planner/internal/rules"
	"github.com/jonathan/outfit-planner/internal/types"
)

// Check names, in evaluation order
const (
	CheckAvailability = "availability"
	CheckWeather      = "weather"
	CheckOccasion     = "occasion"
	CheckColor        = "color"
)

// Result is the outcome of a hard-constraint check. Check is empty when Passed.
type Result struct {
	Passed bool   `json:"passed"`
	Check  string `json:"check,omitempty"`
	Reason string `json:"reason"`
}

const passReason = "All hard constraints satisfied"

// Evaluator applies the rule tables to candidate combinations.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	tables *rules.Tables
}

// NewEvaluator creates an Evaluator over the given tables (rules.Default() when nil).
func NewEvaluator(tables *rules.Tables) *Evaluator {
	if tables == nil {
		tables = rules.Default()
	}
	return &Evaluator{tables: tables}
}

// Tables returns the rule tables the evaluator consults.
func (e *Evaluator) Tables() *rules.Tables {
	return e.tables
}

// Validate runs availability, weather, occasion and color checks in that order.
// The first failing check decides the result.
func (e *Evaluator) Validate(items []types.Item, weather types.Weather, occasion types.Occasion) Result {
	if reason, ok := checkAvailability(items); !ok {
		return fail(CheckAvailability, "Some items are not available", reason)
	}
	if reason, ok := e.checkWeather(items, weather); !ok {
		return fail(CheckWeather, "Weather compatibility failed", reason)
	}
	if reason, ok := e.checkOccasion(items, occasion); !ok {
		return fail(CheckOccasion, "Occasion compatibility failed", reason)
	}
	if reason, ok := e.checkColors(items); !ok {
		return fail(CheckColor, "Color compatibility failed", reason)
	}
	return Result{Passed: true, Reason: passReason}
}

func fail(check, summary, detail string) Result {
	return Result{Check: check, Reason: fmt.Sprintf("%s: %s", summary, detail)}
}

func checkAvailability(items []types.Item) (string, bool) {
	for _, item := range items {
		if !item.Available {
			return fmt.Sprintf("%q (id %d) is unavailable", item.Name, item.ID), false
		}
	}
	return "", true
}

func (e *Evaluator) checkWeather(items []types.Item, weather types.Weather) (string, bool) {
	rule, ok := e.tables.WeatherRule(weather)
	if !ok {
		return "", true
	}

	for _, item := range items {
		name := strings.ToLower(item.Name)
		for _, fragment := range rule.Unsuitable {
			if strings.Contains(name, strings.ToLower(fragment)) {
				return fmt.Sprintf("%q is unsuitable for %s weather (%q)", item.Name, weather, fragment), false
			}
		}
	}

	layers := 0
	for _, item := range items {
		if item.Category.IsLayer() {
			layers++
		}
	}
	if rule.MaxLayers != nil && layers > *rule.MaxLayers {
		return fmt.Sprintf("%d layers exceeds maximum %d", layers, *rule.MaxLayers), false
	}
	if rule.MinLayers != nil && layers < *rule.MinLayers {
		return fmt.Sprintf("%d layers is below minimum %d", layers, *rule.MinLayers), false
	}
	return "", true
}

func (e *Evaluator) checkOccasion(items []types.Item, occasion types.Occasion) (string, bool) {
	rule, ok := e.tables.OccasionRule(occasion)
	if !ok || len(items) == 0 {
		return "", true
	}

	avg := MeanFormality(items)
	if rule.MinFormality != nil && avg < *rule.MinFormality {
		return fmt.Sprintf("average formality %.2f is below %s minimum %.0f", avg, occasion, *rule.MinFormality), false
	}
	if rule.MaxFormality != nil && avg > *rule.MaxFormality {
		return fmt.Sprintf("average formality %.2f exceeds %s maximum %.0f", avg, occasion, *rule.MaxFormality), false
	}
	return "", true
}

func (e *Evaluator) checkColors(items []types.Item) (string, bool) {
	colors := DistinctColors(items)
	if len(colors) < 2 {
		return "", true
	}
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			if !e.tables.Compatible(colors[i], colors[j]) {
				return fmt.Sprintf("%s does not go with %s", colors[i], colors[j]), false
			}
		}
	}
	return "", true
}

// MeanFormality returns the arithmetic mean formality of items (0 for none).
func MeanFormality(items []types.Item) float64 {
	if len(items) == 0 {
		return 0
	}
	total := 0
	for _, item := range items {
		total += item.Formality
	}
	return float64(total) / float64(len(items))
}

// DistinctColors returns the distinct item colors in first-seen order.
func DistinctColors(items []types.Item) []string {
	seen := make(map[string]bool, len(items))
	colors := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item.Color] {
			continue
		}
		seen[item.Color] = true
		colors = append(colors, item.Color)
	}
	return colors
}

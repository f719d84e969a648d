// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/outfit-planner/internal/ranking"
	"github.com/jonathan/outfit-planner/internal/rules"
	"github.com/jonathan/outfit-planner/internal/types"
	"github.com/jonathan/outfit-planner/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxColorsToShow is the number of colors listed in the wardrobe status
	maxColorsToShow = 10
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQuery outputs the parameters of a recommendation query.
func (p *Printer) PrintQuery(query types.Query) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Weather:     %s\n", query.Weather))
	sb.WriteString(fmt.Sprintf("Occasion:    %s\n", query.Occasion))
	if prefs := query.Preferences; !prefs.IsEmpty() {
		if len(prefs.PreferredColors) > 0 {
			sb.WriteString(fmt.Sprintf("Colors:      %s\n", strings.Join(prefs.PreferredColors, ", ")))
		}
		if len(prefs.PreferredStyles) > 0 {
			sb.WriteString(fmt.Sprintf("Styles:      %s\n", strings.Join(prefs.PreferredStyles, ", ")))
		}
	}
	sb.WriteString(fmt.Sprintf("Max results: %d", types.ClampMaxResults(query.MaxResults)))

	p.printBox("OUTFIT QUERY", sb.String())
}

// PrintRecommendations outputs each ranked recommendation followed by run totals.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecommendations(set *types.RecommendationSet) {
	if set == nil {
		return
	}

	if len(set.Recommendations) == 0 {
		p.printBox("NO RECOMMENDATIONS", "No suitable outfit combinations found.\n"+
			"Try relaxing your preferences or check item availability.")
	}

	for i, rec := range set.Recommendations {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Score: %.3f/1.000\n", rec.Score))
		sb.WriteString(fmt.Sprintf("Type:  %s\n\n", rec.Stage.Title()))

		for _, item := range rec.Items {
			sb.WriteString(fmt.Sprintf("  %s %s (%s)\n", item.Color, item.Name, item.Category.Label()))
			sb.WriteString(fmt.Sprintf("      Formality: %d, Style: %s\n", item.Formality, item.Style))
		}

		colors := rec.Colors()
		styles := rec.Styles()
		sb.WriteString(fmt.Sprintf("\nColors: %s (%d unique)\n", strings.Join(colors, ", "), len(colors)))
		sb.WriteString(fmt.Sprintf("Styles: %s (%d unique)", strings.Join(styles, ", "), len(styles)))

		p.printBox(fmt.Sprintf("RECOMMENDATION #%d", i+1), sb.String())
	}

	fmt.Fprintf(p.out, "Checked %d combinations, %d valid, returned %d (%d ms)\n",
		set.Checked, set.Valid, len(set.Recommendations), set.ProcessingMS)
}

// PrintCheck outputs the verdict on a single combination.
func (p *Printer) PrintCheck(items []types.Item, result validation.Result, score *ranking.Breakdown) {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("  %s\n", item.String()))
	}
	sb.WriteString("\n")

	if result.Passed {
		sb.WriteString("Result: VALID\n")
	} else {
		sb.WriteString(fmt.Sprintf("Result: INVALID (%s)\n", result.Check))
	}
	sb.WriteString(result.Reason)

	if score != nil {
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf("Color harmony: %.3f\n", score.ColorHarmony))
		sb.WriteString(fmt.Sprintf("Preference:    %.3f\n", score.Preference))
		sb.WriteString(fmt.Sprintf("Total score:   %.3f/1.000", score.Total))
	}

	p.printBox("OUTFIT CHECK", sb.String())
}

// PrintWardrobeStatus outputs wardrobe totals and breakdowns by category, color, and style.
func (p *Printer) PrintWardrobeStatus(stats types.WardrobeStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total items:       %d\n", stats.TotalItems))
	sb.WriteString(fmt.Sprintf("Available items:   %d\n", stats.AvailableItems))
	sb.WriteString(fmt.Sprintf("Unavailable items: %d\n", stats.UnavailableItems))

	sb.WriteString("\nAvailable by category:\n")
	for _, category := range types.DisplayOrder {
		sb.WriteString(fmt.Sprintf("  %s: %d/%d available\n",
			category.Label(), stats.ByCategory[category], stats.TotalByCategory[category]))
	}

	sb.WriteString("\nAvailable by color:\n")
	colors := sortedCounts(stats.ByColor)
	for i, c := range colors {
		if i == maxColorsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(colors)-maxColorsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  %s: %d items\n", c.key, c.count))
	}

	sb.WriteString("\nAvailable by style:\n")
	for _, s := range sortedCounts(stats.ByStyle) {
		sb.WriteString(fmt.Sprintf("  %s: %d items\n", s.key, s.count))
	}

	p.printBox("WARDROBE STATUS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUnavailable outputs the items currently out of rotation, grouped by category.
func (p *Printer) PrintUnavailable(stats types.WardrobeStats) {
	if stats.UnavailableItems == 0 {
		p.printBox("UNAVAILABLE ITEMS", "All items are currently available!")
		return
	}

	var sb strings.Builder
	for _, category := range types.DisplayOrder {
		items := stats.Unavailable[category]
		if len(items) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", category.Label()))
		for _, item := range items {
			sb.WriteString(fmt.Sprintf("  [%d] %s (%s)\n", item.ID, item.Label(), item.UnavailableReason))
		}
	}

	p.printBox(fmt.Sprintf("UNAVAILABLE ITEMS (%d)", stats.UnavailableItems), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRules outputs the recognized weather and occasion options.
func (p *Printer) PrintRules(tables *rules.Tables) {
	if tables == nil {
		return
	}

	var sb strings.Builder
	for _, w := range types.KnownWeathers {
		rule, ok := tables.WeatherRule(w)
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: layers %s\n", w, bounds(rule.MinLayers, rule.MaxLayers)))
		sb.WriteString(fmt.Sprintf("  avoid: %s\n", strings.Join(rule.Unsuitable, ", ")))
	}
	p.printBox("WEATHER OPTIONS", strings.TrimSuffix(sb.String(), "\n"))

	sb.Reset()
	for _, o := range types.KnownOccasions {
		rule, ok := tables.OccasionRule(o)
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: formality %s\n", o, floatBounds(rule.MinFormality, rule.MaxFormality)))
		sb.WriteString(fmt.Sprintf("  %s\n", rule.Description))
	}
	p.printBox("OCCASION OPTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

type keyCount struct {
	key   string
	count int
}

// sortedCounts orders counts descending, breaking ties by key
func sortedCounts(counts map[string]int) []keyCount {
	out := make([]keyCount, 0, len(counts))
	for k, v := range counts {
		out = append(out, keyCount{key: k, count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}

func bounds(lo, hi *int) string {
	switch {
	case lo != nil && hi != nil:
		return fmt.Sprintf("%d-%d", *lo, *hi)
	case lo != nil:
		return fmt.Sprintf(">= %d", *lo)
	case hi != nil:
		return fmt.Sprintf("<= %d", *hi)
	default:
		return "any"
	}
}

func floatBounds(lo, hi *float64) string {
	switch {
	case lo != nil && hi != nil:
		return fmt.Sprintf("%.0f-%.0f", *lo, *hi)
	case lo != nil:
		return fmt.Sprintf(">= %.0f", *lo)
	case hi != nil:
		return fmt.Sprintf("<= %.0f", *hi)
	default:
		return "any"
	}
}

package selection

import (
	"strings"

	"github.com/jonathan/outfit-planner/internal/types"
)

const categorySeparator = " | "

// Describe renders a combination as "Tops: white Cotton T-Shirt | Bottoms: blue Jeans | ...",
// grouping items by category in display order. Empty categories are omitted.
func Describe(items []types.Item) string {
	parts := make([]string, 0, len(types.DisplayOrder))
	for _, category := range types.DisplayOrder {
		var labels []string
		for _, item := range items {
			if item.Category == category {
				labels = append(labels, item.Label())
			}
		}
		if len(labels) > 0 {
			parts = append(parts, category.Label()+": "+strings.Join(labels, ", "))
		}
	}
	return strings.Join(parts, categorySeparator)
}

//nolint:revive // types is a standard Go package name pattern
package types

// WardrobeFile is the on-disk representation of an inventory (JSON or YAML).
type WardrobeFile struct {
	Items []Item `json:"items" yaml:"items"`
}

// WardrobeStats summarizes an inventory for reporting.
type WardrobeStats struct {
	TotalItems           int                 `json:"total_items"`
	AvailableItems       int                 `json:"available_items"`
	UnavailableItems     int                 `json:"unavailable_items"`
	ByCategory           map[Category]int    `json:"by_category"`
	TotalByCategory      map[Category]int    `json:"total_by_category"`
	ByColor              map[string]int      `json:"by_color"`
	ByStyle              map[string]int      `json:"by_style"`
	UnavailableBreakdown map[string]int      `json:"unavailable_breakdown"`
	Unavailable          map[Category][]Item `json:"unavailable"`
}

// Package types provides type definitions for structured data used throughout the outfit planner.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Category is the closed set of wardrobe slots an item can fill.
type Category string

// Item categories
const (
	CategoryBaseLayer  Category = "base_layer"
	CategoryLowerLayer Category = "lower_layer"
	CategoryOuterLayer Category = "outer_layer"
	CategoryFootwear   Category = "footwear"
	CategoryAccessory  Category = "accessory"
)

// DisplayOrder is the fixed category order used for descriptions and reports.
var DisplayOrder = []Category{
	CategoryBaseLayer,
	CategoryLowerLayer,
	CategoryOuterLayer,
	CategoryFootwear,
	CategoryAccessory,
}

var categoryLabels = map[Category]string{
	CategoryBaseLayer:  "Tops",
	CategoryLowerLayer: "Bottoms",
	CategoryOuterLayer: "Outerwear",
	CategoryFootwear:   "Shoes",
	CategoryAccessory:  "Accessories",
}

// Known reports whether c is one of the recognized categories.
func (c Category) Known() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the human-readable name of the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// IsLayer reports whether items of this category count toward weather layer bounds.
func (c Category) IsLayer() bool {
	return c == CategoryBaseLayer || c == CategoryOuterLayer
}

// Suitability is the weather tag carried by an item.
type Suitability string

// SuitabilityAny marks weather-agnostic items (mostly accessories).
const SuitabilityAny Suitability = "any"

// Item is a single wardrobe piece. Identity is the ID; only Available changes.
type Item struct {
	ID        int         `json:"id" yaml:"id" validate:"required,gt=0"`
	Name      string      `json:"name" yaml:"name" validate:"required"`
	Category  Category    `json:"category" yaml:"category" validate:"required,oneof=base_layer lower_layer outer_layer footwear accessory"`
	Color     string      `json:"color" yaml:"color" validate:"required"`
	Style     string      `json:"style" yaml:"style"`
	Formality int         `json:"formality" yaml:"formality" validate:"min=1,max=10"`
	Weather   Suitability `json:"weather" yaml:"weather" validate:"omitempty,oneof=hot warm cool cold any"`
	Available bool        `json:"available" yaml:"available"`
	// UnavailableReason records why an item is out of rotation ("in laundry").
	UnavailableReason string `json:"unavailable_reason,omitempty" yaml:"unavailable_reason,omitempty"`
}

// Label returns the "color name" label used in descriptions.
func (i Item) Label() string {
	return fmt.Sprintf("%s %s", i.Color, i.Name)
}

// String renders the item with its availability mark.
func (i Item) String() string {
	status := "✓"
	if !i.Available {
		status = "✗"
	}
	return fmt.Sprintf("%s %s (%s)", status, i.Label(), i.Category)
}

// NormalizeTag lowercases and trims a free-form tag such as a color or style.
func NormalizeTag(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalized returns a copy of the item with color and style in canonical form,
// so rule-table lookups and preference matching see the same value.
func (i Item) Normalized() Item {
	i.Color = NormalizeTag(i.Color)
	i.Style = NormalizeTag(i.Style)
	return i
}

// Validate validates the Item using the validator.
func (i *Item) Validate() error {
	validate := validator.New()
	return validate.Struct(i)
}

package inventory

import (
	"sync"

	"github.com/jonathan/outfit-planner/internal/types"
)

// DefaultUnavailableReason is used when an item is marked unavailable without a reason.
const DefaultUnavailableReason = "in laundry"

// Wardrobe is the mutable item store. Queries never read it directly; they
// take a Snapshot. All methods are safe for concurrent use.
type Wardrobe struct {
	mu    sync.RWMutex
	items map[int]types.Item
	order []int
}

// NewWardrobe creates an empty wardrobe.
func NewWardrobe() *Wardrobe {
	return &Wardrobe{items: make(map[int]types.Item)}
}

// FromItems builds a wardrobe from items, validating each one.
func FromItems(items []types.Item) (*Wardrobe, error) {
	w := NewWardrobe()
	for _, item := range items {
		if err := w.Add(item); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Add inserts a new item. Items are never merged: a duplicate ID is rejected.
// Color and style are stored normalized.
func (w *Wardrobe) Add(item types.Item) error {
	item = item.Normalized()
	if err := item.Validate(); err != nil {
		return &ItemError{ID: item.ID, Message: "invalid item", Cause: err}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.items[item.ID]; exists {
		return &ItemError{ID: item.ID, Message: "duplicate item id"}
	}
	w.items[item.ID] = item
	w.order = append(w.order, item.ID)
	return nil
}

// Get returns the item with the given ID.
func (w *Wardrobe) Get(id int) (types.Item, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	item, ok := w.items[id]
	return item, ok
}

// Len returns the number of items in the wardrobe.
func (w *Wardrobe) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.order)
}

// Items returns every item in insertion order.
func (w *Wardrobe) Items() []types.Item {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]types.Item, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.items[id])
	}
	return out
}

// MarkUnavailable takes an item out of rotation. An empty reason defaults to "in laundry".
func (w *Wardrobe) MarkUnavailable(id int, reason string) (types.Item, error) {
	if reason == "" {
		reason = DefaultUnavailableReason
	}
	return w.update(id, func(item *types.Item) {
		item.Available = false
		item.UnavailableReason = reason
	})
}

// MarkAvailable puts an item back into rotation.
func (w *Wardrobe) MarkAvailable(id int) (types.Item, error) {
	return w.update(id, func(item *types.Item) {
		item.Available = true
		item.UnavailableReason = ""
	})
}

// RestoreAvailability resets an item's availability and reason to a previously read state.
func (w *Wardrobe) RestoreAvailability(prior types.Item) error {
	_, err := w.update(prior.ID, func(item *types.Item) {
		item.Available = prior.Available
		item.UnavailableReason = prior.UnavailableReason
	})
	return err
}

func (w *Wardrobe) update(id int, fn func(*types.Item)) (types.Item, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	item, ok := w.items[id]
	if !ok {
		return types.Item{}, &ItemError{ID: id, Message: "not found in wardrobe", NotFound: true}
	}
	fn(&item)
	w.items[id] = item
	return item, nil
}

// Unavailable returns the items currently out of rotation, in insertion order.
func (w *Wardrobe) Unavailable() []types.Item {
	var out []types.Item
	for _, item := range w.Items() {
		if !item.Available {
			out = append(out, item)
		}
	}
	return out
}

// Snapshot captures the current availability as an immutable view.
func (w *Wardrobe) Snapshot() *Snapshot {
	return newSnapshot(w.Items())
}

// Stats summarizes the wardrobe. Color and style counts cover available items only.
func (w *Wardrobe) Stats() types.WardrobeStats {
	stats := types.WardrobeStats{
		ByCategory:           make(map[types.Category]int),
		TotalByCategory:      make(map[types.Category]int),
		ByColor:              make(map[string]int),
		ByStyle:              make(map[string]int),
		UnavailableBreakdown: make(map[string]int),
		Unavailable:          make(map[types.Category][]types.Item),
	}
	for _, category := range types.DisplayOrder {
		stats.ByCategory[category] = 0
		stats.TotalByCategory[category] = 0
	}

	for _, item := range w.Items() {
		stats.TotalItems++
		stats.TotalByCategory[item.Category]++
		if !item.Available {
			stats.UnavailableItems++
			stats.UnavailableBreakdown[item.UnavailableReason]++
			stats.Unavailable[item.Category] = append(stats.Unavailable[item.Category], item)
			continue
		}
		stats.AvailableItems++
		stats.ByCategory[item.Category]++
		stats.ByColor[item.Color]++
		stats.ByStyle[item.Style]++
	}
	return stats
}

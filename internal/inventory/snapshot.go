package inventory

import (
	"github.com/jonathan/outfit-planner/internal/types"
)

// Snapshot is a point-in-time, read-only view of a wardrobe. Later wardrobe
// mutations do not affect it.
type Snapshot struct {
	items      []types.Item
	byCategory map[types.Category][]types.Item
}

func newSnapshot(items []types.Item) *Snapshot {
	s := &Snapshot{
		items:      items,
		byCategory: make(map[types.Category][]types.Item),
	}
	for _, item := range items {
		if item.Available {
			s.byCategory[item.Category] = append(s.byCategory[item.Category], item)
		}
	}
	return s
}

// AvailableItems returns the available items of a category in wardrobe order.
// The returned slice is a copy.
func (s *Snapshot) AvailableItems(category types.Category) []types.Item {
	items := s.byCategory[category]
	out := make([]types.Item, len(items))
	copy(out, items)
	return out
}

// Lookup resolves item IDs against the snapshot, including unavailable items.
// The second return value lists IDs that were not found.
func (s *Snapshot) Lookup(ids []int) ([]types.Item, []int) {
	index := make(map[int]types.Item, len(s.items))
	for _, item := range s.items {
		index[item.ID] = item
	}

	found := make([]types.Item, 0, len(ids))
	var missing []int
	for _, id := range ids {
		item, ok := index[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		found = append(found, item)
	}
	return found, missing
}

package rules

import "slices"

// Compatible reports whether two colors may appear together.
//
// The adjacency table is not symmetric, so the pair is accepted when the
// relation holds from either side, or when either color lists the wildcard.
func (t *Tables) Compatible(a, b string) bool {
	if a == b {
		return true
	}
	return t.accepts(a, b) || t.accepts(b, a)
}

func (t *Tables) accepts(from, to string) bool {
	adj := t.Colors[from]
	return slices.Contains(adj, to) || slices.Contains(adj, Wildcard)
}

// HarmonicMatch reports whether colors contains both members of any curated pair.
func (t *Tables) HarmonicMatch(colors map[string]bool) bool {
	for _, pair := range t.HarmonicPairs {
		if colors[pair[0]] && colors[pair[1]] {
			return true
		}
	}
	return false
}

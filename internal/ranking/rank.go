package ranking

import (
	"sort"

	"github.com/jonathan/outfit-planner/internal/types"
)

// Rank orders candidates by score (descending) and keeps the first maxResults.
// Ties keep generation order. Candidates are not re-validated.
func Rank(candidates []types.Recommendation, maxResults int) []types.Recommendation {
	if maxResults <= 0 || len(candidates) == 0 {
		return []types.Recommendation{}
	}

	ranked := make([]types.Recommendation, len(candidates))
	copy(ranked, candidates)

	// Sort by score (descending), stable on ties
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}

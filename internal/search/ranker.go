package search

import (
	"sort"

	"github.com/gcbaptista/monument-search/services"
)

// Rank groups the concatenated per-token candidate matches of one facet by
// monument identity, sums the scores within each group and returns the
// groups sorted descending by aggregate score.
//
// Grouping uses the monument primary key, not the display name: two
// distinct monuments sharing a name stay distinct. The monument carried
// into the hit is the group's first occurrence in the input. Ties are
// broken by first appearance in the candidate stream (stable sort), which
// makes the output deterministic for a deterministic input order.
//
// Every monument with at least one candidate match appears exactly once in
// the output; monuments with no matches never appear.
func Rank(matches []services.CandidateMatch) []services.RankedHit {
	hits := make([]services.RankedHit, 0, len(matches)) // Initialize as empty slice, not nil
	position := make(map[int64]int, len(matches))       // monument key -> index into hits

	for _, match := range matches {
		key := match.Monument.Key()
		if idx, seen := position[key]; seen {
			hits[idx].Score += match.Score
			continue
		}
		position[key] = len(hits)
		hits = append(hits, services.RankedHit{Score: match.Score, Monument: match.Monument})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	return hits
}

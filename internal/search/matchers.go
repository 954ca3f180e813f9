package search

import (
	"context"
	"fmt"

	"github.com/gcbaptista/monument-search/services"
)

// fieldMatcher runs one facet's substring query for a single token and
// scores every row it returns. The three facets only differ in which
// storage query they issue and which field value they score against, so
// each matcher is a thin shell over the store.
type fieldMatcher func(ctx context.Context, token string) ([]services.CandidateMatch, error)

// matchers builds the facet matcher table over a monument store. Candidate
// lists come back in storage iteration order; ordering is imposed later by
// Rank.
func matchers(store services.MonumentStore) map[services.Facet]fieldMatcher {
	return map[services.Facet]fieldMatcher{
		services.FacetName:        matcherFor(store.MonumentsByName, "monuments_by_name"),
		services.FacetLocation:    matcherFor(store.MonumentsByStreet, "monuments_by_street"),
		services.FacetParticipant: matcherFor(store.MonumentsByParticipant, "monuments_by_participant"),
	}
}

// matcherFor wraps one storage query into a fieldMatcher. Storage errors
// propagate to the caller with the facet query named; there is no local
// recovery.
func matcherFor(query func(ctx context.Context, token string) ([]services.FieldMatch, error), name string) fieldMatcher {
	return func(ctx context.Context, token string) ([]services.CandidateMatch, error) {
		fieldMatches, err := query(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("%s query for token %q: %w", name, token, err)
		}

		candidates := make([]services.CandidateMatch, 0, len(fieldMatches))
		for _, fm := range fieldMatches {
			candidates = append(candidates, services.CandidateMatch{
				Score:    Score(fm.Value, token),
				Monument: fm.Monument,
			})
		}
		return candidates, nil
	}
}

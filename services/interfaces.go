// Package services defines the public interfaces and result types of the
// monument search service. Handlers and cmd wiring depend on these
// interfaces, never on the internal implementations directly.
package services

import (
	"context"

	"github.com/gcbaptista/monument-search/model"
)

// Facet identifies one of the independent search dimensions. Every search
// runs all facets and returns one ranked list per facet.
type Facet string

const (
	// FacetName matches query tokens against monument names.
	FacetName Facet = "byName"
	// FacetLocation matches query tokens against address street names.
	FacetLocation Facet = "byLocation"
	// FacetParticipant matches query tokens against participant names.
	FacetParticipant Facet = "byParticipant"
)

// Facets lists all facets in the order they are evaluated.
var Facets = []Facet{FacetName, FacetLocation, FacetParticipant}

// CandidateMatch is one (score, monument) pair produced by a facet matcher
// for a single token. Scores live in [0, 1]: 1.0 means the token equals the
// matched field value, 0.0 means no overlap.
type CandidateMatch struct {
	Score    float64        `json:"score"`
	Monument model.Monument `json:"monument"`
}

// RankedHit is one entry of a facet's ranked result: a monument together
// with its aggregate score, the sum of all its per-token candidate scores.
type RankedHit struct {
	Score    float64        `json:"score"`
	Monument model.Monument `json:"monument"`
}

// SearchResult is the full outcome of one search call: one ranked hit list
// per facet, sorted descending by score.
type SearchResult struct {
	Hits    map[Facet][]RankedHit `json:"hits"`
	Query   string                `json:"query"`
	Tokens  []string              `json:"tokens"`
	Took    int64                 `json:"took"`     // milliseconds
	QueryID string                `json:"query_id"` // unique UUID for this search
}

// Searcher is the single entry point of the search core.
type Searcher interface {
	Search(ctx context.Context, query string) (SearchResult, error)
}

// HistoryLog is the append-only log of raw search queries.
type HistoryLog interface {
	Record(query string) model.HistoryEntry
	Entries() []model.HistoryEntry
}

// FieldMatch pairs a monument with the text value of the field a substring
// query matched on, so the scorer can compare token against field value.
type FieldMatch struct {
	Monument model.Monument
	Value    string
}

// YearRange is the result of the min/max aggregation over construction years.
type YearRange struct {
	Oldest int `json:"oldest"`
	Newest int `json:"newest"`
}

// BoundingBox is a geographic query window. Latitudes and longitudes are
// inclusive on both ends.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// MonumentStore is the boundary to the relational storage collaborator.
// The dataset is read-only at query time; every method is a one-shot
// synchronous read with no retry logic.
type MonumentStore interface {
	// MonumentsByName returns every monument whose name contains the token,
	// case-insensitively, paired with the name that matched.
	MonumentsByName(ctx context.Context, token string) ([]FieldMatch, error)
	// MonumentsByStreet returns every monument whose address street contains
	// the token, case-insensitively, paired with the street that matched.
	MonumentsByStreet(ctx context.Context, token string) ([]FieldMatch, error)
	// MonumentsByParticipant returns every monument one of whose participants'
	// names contains the token, case-insensitively, paired with the
	// participant name that matched. A monument appears once per matching
	// participant.
	MonumentsByParticipant(ctx context.Context, token string) ([]FieldMatch, error)

	Monuments(ctx context.Context) ([]model.Monument, error)
	MonumentByID(ctx context.Context, id int64) (model.Monument, error)
	MonumentsWithin(ctx context.Context, box BoundingBox) ([]model.Monument, error)
	ConstructionYearRange(ctx context.Context) (YearRange, error)
}

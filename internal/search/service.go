// Package search implements the ranked full-text search pipeline: tokenize
// the query once, run every facet's matcher over the tokens, score and
// aggregate the candidates and return one ranked list per facet.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gcbaptista/monument-search/internal/metrics"
	"github.com/gcbaptista/monument-search/internal/tokenizer"
	"github.com/gcbaptista/monument-search/services"
)

// Service implements the search orchestration over a monument store.
// It fulfills the services.Searcher interface. The pipeline itself is
// stateless; the store holds the single shared database connection.
type Service struct {
	matchers map[services.Facet]fieldMatcher
	logger   logrus.FieldLogger
	metrics  *metrics.SearchMetrics
}

// NewService creates a new search Service.
func NewService(store services.MonumentStore, logger logrus.FieldLogger, m *metrics.SearchMetrics) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("monument store cannot be nil")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Service{
		matchers: matchers(store),
		logger:   logger,
		metrics:  m,
	}, nil
}

// Search runs one ranked search. The query is tokenized once; each facet
// then flat-maps all tokens through its matcher and ranks the concatenated
// candidates independently of the other facets. A storage failure in any
// facet aborts the whole call.
func (s *Service) Search(ctx context.Context, query string) (services.SearchResult, error) {
	startTime := time.Now()
	queryID := uuid.New().String()

	if s.metrics != nil {
		s.metrics.SearchesTotal.Inc()
	}

	tokens := tokenizer.Tokenize(query)

	result := services.SearchResult{
		Hits:    make(map[services.Facet][]services.RankedHit, len(services.Facets)),
		Query:   query,
		Tokens:  tokens,
		QueryID: queryID,
	}

	for _, facet := range services.Facets {
		hits, err := s.searchFacet(ctx, facet, tokens)
		if err != nil {
			if s.metrics != nil {
				s.metrics.SearchErrors.Inc()
			}
			s.logger.WithFields(logrus.Fields{
				"query_id": queryID,
				"facet":    facet,
			}).WithError(err).Error("search facet failed")
			return services.SearchResult{}, fmt.Errorf("facet %s: %w", facet, err)
		}
		result.Hits[facet] = hits
	}

	took := time.Since(startTime)
	result.Took = took.Milliseconds()
	if s.metrics != nil {
		s.metrics.SearchDuration.Observe(took.Seconds())
	}

	s.logger.WithFields(logrus.Fields{
		"query_id": queryID,
		"tokens":   len(tokens),
		"took_ms":  result.Took,
	}).Debug("search completed")

	return result, nil
}

// searchFacet runs one facet's matcher for every token and ranks the
// concatenated candidates.
func (s *Service) searchFacet(ctx context.Context, facet services.Facet, tokens []string) ([]services.RankedHit, error) {
	match := s.matchers[facet]

	candidates := make([]services.CandidateMatch, 0)
	for _, token := range tokens {
		tokenMatches, err := match(ctx, token)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, tokenMatches...)
	}

	if s.metrics != nil {
		s.metrics.FacetCandidates.WithLabelValues(string(facet)).Add(float64(len(candidates)))
	}

	return Rank(candidates), nil
}

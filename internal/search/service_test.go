package search

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/gcbaptista/monument-search/model"
	"github.com/gcbaptista/monument-search/services"
)

// --- Test Helpers ---

// fakeStore is an in-memory services.MonumentStore serving canned field
// matches per facet and token. It records every token queried per facet.
type fakeStore struct {
	byName        map[string][]services.FieldMatch
	byStreet      map[string][]services.FieldMatch
	byParticipant map[string][]services.FieldMatch

	queriedByName []string
	failOn        string // facet op name that should return an error
}

func (f *fakeStore) MonumentsByName(_ context.Context, token string) ([]services.FieldMatch, error) {
	if f.failOn == "name" {
		return nil, fmt.Errorf("simulated storage failure")
	}
	f.queriedByName = append(f.queriedByName, token)
	return f.byName[token], nil
}

func (f *fakeStore) MonumentsByStreet(_ context.Context, token string) ([]services.FieldMatch, error) {
	if f.failOn == "street" {
		return nil, fmt.Errorf("simulated storage failure")
	}
	return f.byStreet[token], nil
}

func (f *fakeStore) MonumentsByParticipant(_ context.Context, token string) ([]services.FieldMatch, error) {
	if f.failOn == "participant" {
		return nil, fmt.Errorf("simulated storage failure")
	}
	return f.byParticipant[token], nil
}

func (f *fakeStore) Monuments(_ context.Context) ([]model.Monument, error) { return nil, nil }
func (f *fakeStore) MonumentByID(_ context.Context, _ int64) (model.Monument, error) {
	return model.Monument{}, nil
}
func (f *fakeStore) MonumentsWithin(_ context.Context, _ services.BoundingBox) ([]model.Monument, error) {
	return nil, nil
}
func (f *fakeStore) ConstructionYearRange(_ context.Context) (services.YearRange, error) {
	return services.YearRange{}, nil
}

func newTestService(t *testing.T, store services.MonumentStore) *Service {
	t.Helper()
	svc, err := NewService(store, nil, nil)
	if err != nil {
		t.Fatalf("Failed to create search service: %v", err)
	}
	return svc
}

// --- Test Cases ---

func TestNewService(t *testing.T) {
	t.Run("valid initialization", func(t *testing.T) {
		if _, err := NewService(&fakeStore{}, nil, nil); err != nil {
			t.Errorf("NewService() error = %v, wantErr nil", err)
		}
	})

	t.Run("nil store", func(t *testing.T) {
		if _, err := NewService(nil, nil, nil); err == nil {
			t.Error("NewService() with nil store, wantErr, got nil")
		}
	})
}

func TestSearchEndToEnd(t *testing.T) {
	tor := model.Monument{ID: 7, Name: "Brandenburger Tor"}
	store := &fakeStore{
		byName: map[string][]services.FieldMatch{
			"tor": {{Monument: tor, Value: "Brandenburger Tor"}},
		},
	}
	svc := newTestService(t, store)

	result, err := svc.Search(context.Background(), "Tor")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	byName := result.Hits[services.FacetName]
	if len(byName) != 1 {
		t.Fatalf("byName hits = %d, want 1", len(byName))
	}
	wantScore := 1.0 - 14.0/17.0 // "Brandenburger " left after removing "tor"
	if math.Abs(byName[0].Score-wantScore) > scoreTolerance {
		t.Errorf("byName score = %v, want %v", byName[0].Score, wantScore)
	}
	if byName[0].Monument.ID != tor.ID {
		t.Errorf("byName hit monument = %d, want %d", byName[0].Monument.ID, tor.ID)
	}

	// Unmatched facets return empty, not missing, lists.
	for _, facet := range []services.Facet{services.FacetLocation, services.FacetParticipant} {
		hits, ok := result.Hits[facet]
		if !ok {
			t.Errorf("facet %s missing from result", facet)
			continue
		}
		if len(hits) != 0 {
			t.Errorf("facet %s hits = %d, want 0", facet, len(hits))
		}
	}

	if result.QueryID == "" {
		t.Error("Search() result has empty QueryID")
	}
}

func TestSearchAggregatesAcrossTokens(t *testing.T) {
	schloss := model.Monument{ID: 3, Name: "Schloss Charlottenburg"}
	store := &fakeStore{
		byName: map[string][]services.FieldMatch{
			"schloss":        {{Monument: schloss, Value: "Schloss Charlottenburg"}},
			"charlottenburg": {{Monument: schloss, Value: "Schloss Charlottenburg"}},
		},
	}
	svc := newTestService(t, store)

	result, err := svc.Search(context.Background(), "Schloss Charlottenburg")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	byName := result.Hits[services.FacetName]
	if len(byName) != 1 {
		t.Fatalf("byName hits = %d, want 1 (same monument grouped across tokens)", len(byName))
	}
	wantScore := Score("Schloss Charlottenburg", "schloss") + Score("Schloss Charlottenburg", "charlottenburg")
	if math.Abs(byName[0].Score-wantScore) > scoreTolerance {
		t.Errorf("aggregate score = %v, want %v", byName[0].Score, wantScore)
	}
}

func TestSearchDeduplicatesTokensBeforeMatching(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)

	if _, err := svc.Search(context.Background(), "Tor Tor TOR"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if !reflect.DeepEqual(store.queriedByName, []string{"tor"}) {
		t.Errorf("byName queried tokens = %v, want [tor] (duplicates collapsed)", store.queriedByName)
	}
}

func TestSearchStorageFailureAbortsCall(t *testing.T) {
	store := &fakeStore{failOn: "street"}
	svc := newTestService(t, store)

	if _, err := svc.Search(context.Background(), "Tor"); err == nil {
		t.Error("Search() with failing street facet, wantErr, got nil")
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newTestService(t, &fakeStore{})

	result, err := svc.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(result.Tokens) != 0 {
		t.Errorf("tokens = %v, want none", result.Tokens)
	}
	for _, facet := range services.Facets {
		if len(result.Hits[facet]) != 0 {
			t.Errorf("facet %s hits = %d, want 0 for empty query", facet, len(result.Hits[facet]))
		}
	}
}

func TestSearchIdempotence(t *testing.T) {
	tor := model.Monument{ID: 7, Name: "Brandenburger Tor"}
	platz := model.Monument{ID: 8, Name: "Pariser Platz Tor"}
	store := &fakeStore{
		byName: map[string][]services.FieldMatch{
			"tor": {
				{Monument: tor, Value: "Brandenburger Tor"},
				{Monument: platz, Value: "Pariser Platz Tor"},
			},
		},
	}
	svc := newTestService(t, store)

	first, err := svc.Search(context.Background(), "Tor")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	second, err := svc.Search(context.Background(), "Tor")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if !reflect.DeepEqual(first.Hits, second.Hits) {
		t.Errorf("repeated search returned different hits:\nfirst:  %+v\nsecond: %+v", first.Hits, second.Hits)
	}
}

package search

import (
	"testing"

	"discovery-server/models"

	"go.uber.org/zap"
)

func newTestPipeline(t *testing.T, clock Clock, rng RandomSource) *Pipeline {
	t.Helper()
	p, err := NewPipeline(clock, rng, 2, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Failed to build pipeline: %v", err)
	}
	t.Cleanup(p.Release)
	return p
}

var tuesdayNoon = FixedClock{Time: LocalTime{DayOfWeek: 2, Minutes: 12 * 60}}

// Scenario A: a text query keeps only textual matches, scored by match kind.
func TestPipeline_TextQueryScenario(t *testing.T) {
	candidates := []models.Business{
		{
			ID:          "pizza",
			Name:        "Pizza Rápida",
			Category:    "Alimentação",
			Coordinates: &models.Coordinates{Lat: -23.5, Lng: -46.6},
		},
		{
			ID:          "tires",
			Name:        "Borracharia Sul",
			Category:    "Automotivo",
			Coordinates: &models.Coordinates{Lat: -23.6, Lng: -46.7},
		},
	}

	pipeline := newTestPipeline(t, tuesdayNoon, FixedRandomSource{})
	results := pipeline.Search(candidates, models.SearchQuery{RawText: "pizza"})

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].ID != "pizza" {
		t.Errorf("Expected the pizza business, got %s", results[0].ID)
	}
	// "Pizza Rápida" contains the query but is not an exact name match.
	if results[0].Score != SCORE_NAME_CONTAINS {
		t.Errorf("Score = %d, expected %d", results[0].Score, SCORE_NAME_CONTAINS)
	}

	// An exact normalized name match scores the full name bonus.
	candidates[0].Name = "Pizza"
	results = pipeline.Search(candidates, models.SearchQuery{RawText: "pizza"})
	if len(results) != 1 || results[0].Score != SCORE_NAME_EXACT {
		t.Errorf("Expected single result with score %d, got %+v", SCORE_NAME_EXACT, results)
	}
}

// Scenario B: browse-all with an origin orders ascending by distance.
func TestPipeline_ProximityScenario(t *testing.T) {
	candidates := []models.Business{
		{ID: "far", Name: "Far", Coordinates: &models.Coordinates{Lat: -23.9, Lng: -46.9}},
		{ID: "near", Name: "Near", Coordinates: &models.Coordinates{Lat: -23.51, Lng: -46.61}},
		{ID: "mid", Name: "Mid", Coordinates: &models.Coordinates{Lat: -23.7, Lng: -46.7}},
	}
	query := models.SearchQuery{
		Origin:   &models.Coordinates{Lat: -23.5, Lng: -46.6},
		SortMode: models.SortProximity,
	}

	pipeline := newTestPipeline(t, tuesdayNoon, FixedRandomSource{})
	results := pipeline.Search(candidates, query)

	assertOrder(t, results, "near", "mid", "far")
	for i := 1; i < len(results); i++ {
		if *results[i-1].DistanceKm > *results[i].DistanceKm {
			t.Errorf("Distances not ascending: %f before %f", *results[i-1].DistanceKm, *results[i].DistanceKm)
		}
	}
}

// Scenario C: openOnly at Tuesday 20:00 excludes a business closed on Tuesdays.
func TestPipeline_OpenOnlyScenario(t *testing.T) {
	candidates := []models.Business{
		{
			ID:   "closed-tuesdays",
			Name: "Fechado às Terças",
			WeeklyHours: []models.DaySchedule{
				{DayOfWeek: 2, IsClosed: true},
				{DayOfWeek: 3, OpenTime: "09:00", CloseTime: "22:00"},
			},
		},
		{
			ID:   "open-late",
			Name: "Aberto Até Tarde",
			WeeklyHours: []models.DaySchedule{
				{DayOfWeek: 2, OpenTime: "18:00", CloseTime: "23:00"},
			},
		},
	}
	tuesdayEvening := FixedClock{Time: LocalTime{DayOfWeek: 2, Minutes: 20 * 60}}

	pipeline := newTestPipeline(t, tuesdayEvening, FixedRandomSource{})
	results := pipeline.Search(candidates, models.SearchQuery{OpenOnly: true})

	if len(results) != 1 || results[0].ID != "open-late" {
		t.Fatalf("Expected only the open business, got %+v", results)
	}
	if !results[0].IsOpenNow {
		t.Error("Surviving result should report IsOpenNow")
	}
}

// Geo-less candidates sort after every geo-located one when the origin is
// known, regardless of the random placeholder value.
func TestPipeline_GeoLessCandidatesSortLast(t *testing.T) {
	candidates := []models.Business{
		{ID: "no-coords-1", Name: "Sem Endereço"},
		{ID: "with-coords", Name: "Com Endereço", Coordinates: &models.Coordinates{Lat: -23.9, Lng: -46.9}},
		{ID: "no-coords-2", Name: "Sem Endereço Também"},
	}
	query := models.SearchQuery{Origin: &models.Coordinates{Lat: -23.5, Lng: -46.6}}

	pipeline := newTestPipeline(t, tuesdayNoon, FixedRandomSource{Value: 0.99})
	results := pipeline.Search(candidates, query)

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if results[0].ID != "with-coords" {
		t.Errorf("Expected the geo-located business first, got %s", results[0].ID)
	}
	for _, r := range results[1:] {
		if r.DistanceKm != nil {
			t.Errorf("Geo-less result %s has a distance", r.ID)
		}
		if r.SortKey < NO_COORDS_BASE_KEY {
			t.Errorf("Geo-less result %s sorted with key %f below base", r.ID, r.SortKey)
		}
	}
}

// Category and subcategory pre-filters run before annotation; open-only and
// text relevance after.
func TestPipeline_FilterComposition(t *testing.T) {
	candidates := []models.Business{
		{
			ID:            "match",
			Name:          "Pizza da Praça",
			Category:      "Alimentação",
			Subcategories: []string{"Pizzarias"},
			WeeklyHours:   []models.DaySchedule{{DayOfWeek: 2, OpenTime: "09:00", CloseTime: "18:00"}},
		},
		{
			ID:            "wrong-category",
			Name:          "Pizza Motors",
			Category:      "Automotivo",
			Subcategories: []string{"Pizzarias"},
		},
		{
			ID:            "closed",
			Name:          "Pizza Fechada",
			Category:      "Alimentação",
			Subcategories: []string{"Pizzarias"},
			WeeklyHours:   []models.DaySchedule{{DayOfWeek: 2, IsClosed: true}},
		},
		{
			ID:            "no-text-match",
			Name:          "Churrascaria Gaúcha",
			Category:      "Alimentação",
			Subcategories: []string{"Pizzarias"},
			WeeklyHours:   []models.DaySchedule{{DayOfWeek: 2, OpenTime: "09:00", CloseTime: "18:00"}},
		},
	}
	query := models.SearchQuery{
		RawText:       "pizza",
		Category:      "Alimentação",
		Subcategories: []string{"Pizzarias"},
		OpenOnly:      true,
	}

	pipeline := newTestPipeline(t, tuesdayNoon, FixedRandomSource{})
	results := pipeline.Search(candidates, query)

	if len(results) != 1 || results[0].ID != "match" {
		t.Fatalf("Expected only the fully matching business, got %+v", results)
	}
}

func TestPipeline_EmptyResultIsNormal(t *testing.T) {
	pipeline := newTestPipeline(t, tuesdayNoon, FixedRandomSource{})

	results := pipeline.Search(nil, models.SearchQuery{RawText: "pizza"})
	if len(results) != 0 {
		t.Errorf("Expected empty result list, got %d", len(results))
	}

	results = pipeline.Search([]models.Business{{ID: "b1", Name: "Borracharia"}}, models.SearchQuery{RawText: "pizza"})
	if len(results) != 0 {
		t.Errorf("Expected no matches, got %d", len(results))
	}
}

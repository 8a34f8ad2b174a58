package search

import (
	"sort"

	"discovery-server/models"
)

// SortResults orders annotated results in place by the active ranking mode:
// text queries sort strictly descending by relevance score; popularity sorts
// descending by favorites with the sort key as tie-break; proximity (the
// default, and the fallback for unknown modes) sorts ascending by sort key.
// Every branch uses a stable sort so equal keys keep their incoming order.
func SortResults(results []models.SearchResult, query models.SearchQuery) {
	switch {
	case query.HasText():
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
	case query.SortMode == models.SortPopularity:
		sort.SliceStable(results, func(i, j int) bool {
			if results[i].FavoritesCount != results[j].FavoritesCount {
				return results[i].FavoritesCount > results[j].FavoritesCount
			}
			return results[i].SortKey < results[j].SortKey
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].SortKey < results[j].SortKey
		})
	}
}

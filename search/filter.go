package search

import (
	"strings"

	"discovery-server/models"
)

// PreFilter applies the attribute filters that need no annotation: exact
// category match (accent- and case-insensitive) and has-any subcategory
// intersection. Cheap, so the pipeline runs it before the per-candidate
// annotation. Idempotent.
func PreFilter(candidates []models.Business, query models.SearchQuery) []models.Business {
	wantCategory := Normalize(strings.TrimSpace(query.Category))

	out := make([]models.Business, 0, len(candidates))
	for _, b := range candidates {
		if wantCategory != "" && Normalize(b.Category) != wantCategory {
			continue
		}
		if len(query.Subcategories) > 0 && !hasAnySubcategory(b.Subcategories, query.Subcategories) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// hasAnySubcategory reports whether the candidate's subcategory set
// intersects the requested one. Has-any semantics, not has-all.
func hasAnySubcategory(have, want []string) bool {
	set := make(map[string]bool, len(have))
	for _, s := range have {
		set[Normalize(s)] = true
	}
	for _, s := range want {
		if set[Normalize(s)] {
			return true
		}
	}
	return false
}

// PostFilter drops annotated results by their derived fields: closed
// businesses when openOnly is set, and zero-score results when the query
// carries text. With no text every candidate holds the neutral score and
// passes through. Idempotent.
func PostFilter(results []models.SearchResult, query models.SearchQuery) []models.SearchResult {
	hasText := query.HasText()

	out := make([]models.SearchResult, 0, len(results))
	for _, r := range results {
		if query.OpenOnly && !r.IsOpenNow {
			continue
		}
		if hasText && r.Score == 0 {
			continue
		}
		out = append(out, r)
	}
	return out
}

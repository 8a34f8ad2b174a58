package search

import (
	"strings"

	"discovery-server/models"
)

// Relevance bonuses. An exact name match is the strongest signal; a category
// hit is an independent secondary signal and stacks on top of a name hit, so
// a query like "pizza" still surfaces businesses whose category contains it
// even without a name match.
const (
	SCORE_NEUTRAL       = 1
	SCORE_NAME_EXACT    = 50
	SCORE_NAME_CONTAINS = 20
	SCORE_CATEGORY_HIT  = 30
)

// Score rates a candidate against an already-normalized query string. An
// empty query scores every candidate SCORE_NEUTRAL so browse-all mode keeps
// the whole catalog; 0 means "no textual match at all" and gets the
// candidate dropped later when the query carries text.
func Score(normalizedQuery string, b models.Business) int {
	if normalizedQuery == "" {
		return SCORE_NEUTRAL
	}

	score := 0
	name := Normalize(b.Name)
	if name == normalizedQuery {
		score += SCORE_NAME_EXACT
	} else if strings.Contains(name, normalizedQuery) {
		score += SCORE_NAME_CONTAINS
	}
	if strings.Contains(Normalize(b.Category), normalizedQuery) {
		score += SCORE_CATEGORY_HIT
	}
	return score
}

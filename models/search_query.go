package models

import (
	"net/url"
	"strconv"
	"strings"
)

// SortMode selects the ranking applied when the query carries no text.
type SortMode string

const (
	SortProximity  SortMode = "proximity"
	SortPopularity SortMode = "popularity"
)

// Query arg names consumed by the public search endpoint.
const (
	TEXT_QUERY_ARG        = "q"
	CATEGORY_QUERY_ARG    = "category"
	SUBCATEGORY_QUERY_ARG = "subcategory"
	LAT_QUERY_ARG         = "lat"
	LNG_QUERY_ARG         = "lng"
	SORT_QUERY_ARG        = "sort"
	STATUS_QUERY_ARG      = "status"
)

// SortModeFromString maps the "sort" query arg onto a SortMode. Unknown
// values fall back to proximity, the most conservative default.
func SortModeFromString(s string) SortMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "popular", "popularity":
		return SortPopularity
	default:
		return SortProximity
	}
}

// SearchQuery mirrors the search page's query args. Use zero-values to omit.
type SearchQuery struct {
	RawText       string
	Category      string
	Subcategories []string
	Origin        *Coordinates
	SortMode      SortMode
	OpenOnly      bool
}

// HasText reports whether the query carries a non-blank free-text term.
// Whitespace-only input counts as "no text filter".
func (q SearchQuery) HasText() bool {
	return strings.TrimSpace(q.RawText) != ""
}

// SearchQueryFromValues decodes the public query args:
// ?q=&category=&subcategory=a,b&lat=&lng=&sort=popular&status=open
// A malformed or half-present lat/lng pair degrades to "no origin" rather
// than failing the request.
func SearchQueryFromValues(vals url.Values) SearchQuery {
	q := SearchQuery{
		RawText:  strings.TrimSpace(vals.Get(TEXT_QUERY_ARG)),
		Category: strings.TrimSpace(vals.Get(CATEGORY_QUERY_ARG)),
		SortMode: SortModeFromString(vals.Get(SORT_QUERY_ARG)),
		OpenOnly: strings.EqualFold(strings.TrimSpace(vals.Get(STATUS_QUERY_ARG)), "open"),
	}

	if raw := strings.TrimSpace(vals.Get(SUBCATEGORY_QUERY_ARG)); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				q.Subcategories = append(q.Subcategories, s)
			}
		}
	}

	lat, latErr := strconv.ParseFloat(vals.Get(LAT_QUERY_ARG), 64)
	lng, lngErr := strconv.ParseFloat(vals.Get(LNG_QUERY_ARG), 64)
	if latErr == nil && lngErr == nil {
		q.Origin = &Coordinates{Lat: lat, Lng: lng}
	}

	return q
}

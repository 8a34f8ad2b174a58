package models

// SearchResult pairs a Business with the ranking fields derived for one
// search call. Nothing here is persisted; every field is recomputed per
// invocation.
//
// DistanceKm is present only when both the visitor origin and the business
// coordinates are known. SortKey is a pure ordering value: the real distance
// when available, otherwise a placeholder that pushes geo-less candidates
// after every geo-located one.
type SearchResult struct {
	Business
	Score      int      `json:"score"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
	SortKey    float64  `json:"sort_key"`
	IsOpenNow  bool     `json:"is_open_now"`
}

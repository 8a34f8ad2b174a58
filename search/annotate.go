package search

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"discovery-server/models"
)

// RandomSource yields floats in [0, 1). The pipeline uses it only for the
// placeholder sort key of candidates without coordinates; injecting it keeps
// everything else deterministic under test.
type RandomSource interface {
	Float64() float64
}

// lockedRandomSource wraps math/rand behind a mutex. Annotation fans out
// over a worker pool and *rand.Rand is not safe for concurrent use.
type lockedRandomSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *lockedRandomSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// NewMathRandomSource returns the production RandomSource, seeded from the
// wall clock.
func NewMathRandomSource() RandomSource {
	return &lockedRandomSource{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// FixedRandomSource always yields the same value.
type FixedRandomSource struct {
	Value float64
}

func (f FixedRandomSource) Float64() float64 {
	return f.Value
}

const (
	// Geo-less candidates under a known origin sort after every geo-located
	// one, shuffled among themselves so older records get no fixed head
	// start. The spread keeps the placeholder well clear of any real
	// city-scale distance.
	NO_COORDS_BASE_KEY   = 10000.0
	NO_COORDS_KEY_SPREAD = 5000.0

	// With no origin at all, proximity ordering is a no-op.
	NO_ORIGIN_KEY = 999999.0
)

// Annotate derives the ranking fields for one candidate: distance (when both
// coordinate pairs exist), the ordering sort key, the text relevance score,
// and the open/closed state at the given local instant.
func Annotate(b models.Business, query models.SearchQuery, now LocalTime, rng RandomSource) models.SearchResult {
	result := models.SearchResult{Business: b}

	switch {
	case query.Origin != nil && b.Coordinates != nil:
		d := DistanceKm(query.Origin.Lat, query.Origin.Lng, b.Coordinates.Lat, b.Coordinates.Lng)
		result.DistanceKm = &d
		result.SortKey = d
	case query.Origin != nil:
		result.SortKey = NO_COORDS_BASE_KEY + rng.Float64()*NO_COORDS_KEY_SPREAD
	default:
		result.SortKey = NO_ORIGIN_KEY
	}

	result.Score = Score(Normalize(strings.TrimSpace(query.RawText)), b)
	result.IsOpenNow = IsOpenAt(b.WeeklyHours, now)

	return result
}

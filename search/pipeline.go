package search

import (
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"discovery-server/models"
)

// Pipeline runs one search over an in-memory candidate list: pre-filter,
// annotate, post-filter, sort. It performs no I/O, raises no domain errors,
// and holds no per-request state, so a single Pipeline may serve concurrent
// searches without coordination.
type Pipeline struct {
	clock  Clock
	rng    RandomSource
	pool   *ants.Pool
	logger *zap.SugaredLogger
}

// NewPipeline builds a Pipeline with the given clock and random source.
// poolSize bounds the annotation fan-out; values below 1 fall back to the
// CPU count.
func NewPipeline(clock Clock, rng RandomSource, poolSize int, logger *zap.SugaredLogger) (*Pipeline, error) {
	if poolSize < 1 {
		poolSize = runtime.NumCPU()
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		clock:  clock,
		rng:    rng,
		pool:   pool,
		logger: logger,
	}, nil
}

// Release frees the annotation worker pool.
func (p *Pipeline) Release() {
	p.pool.Release()
}

// Search ranks the candidates against the query at the clock's current
// instant. An empty result is a normal outcome, not an error.
func (p *Pipeline) Search(candidates []models.Business, query models.SearchQuery) []models.SearchResult {
	return p.SearchAt(candidates, query, p.clock.Now())
}

// SearchAt is Search with an explicit instant, for callers and tests that
// already hold one.
func (p *Pipeline) SearchAt(candidates []models.Business, query models.SearchQuery, now LocalTime) []models.SearchResult {
	pre := PreFilter(candidates, query)
	results := p.annotateAll(pre, query, now)
	results = PostFilter(results, query)
	SortResults(results, query)

	p.logger.Debugw("search ranked",
		"candidates", len(candidates),
		"prefiltered", len(pre),
		"results", len(results),
	)
	return results
}

// annotateAll fans candidate annotation out over the worker pool.
// Annotation of one candidate never depends on another, and each task
// writes its own slot, so the output keeps the pre-filter order regardless
// of scheduling.
func (p *Pipeline) annotateAll(candidates []models.Business, query models.SearchQuery, now LocalTime) []models.SearchResult {
	results := make([]models.SearchResult, len(candidates))

	var wg sync.WaitGroup
	for i := range candidates {
		i := i
		wg.Add(1)
		if err := p.pool.Submit(func() {
			defer wg.Done()
			results[i] = Annotate(candidates[i], query, now, p.rng)
		}); err != nil {
			// pool unavailable (released or saturated): annotate inline
			results[i] = Annotate(candidates[i], query, now, p.rng)
			wg.Done()
		}
	}
	wg.Wait()

	return results
}

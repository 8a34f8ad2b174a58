package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"discovery-server/dao/redis"
	"discovery-server/util"
)

// CatalogRefresherService keeps the Redis catalog in sync with the business
// profiles exported by the publishing side, reloading the export file on a
// fixed interval. Subscription and visibility filtering happen in the
// exporter, so everything loaded here is fair game for search.
type CatalogRefresherService struct {
	businessDao *redis.RedisBusinessDAO
	fixturePath string
	logger      *zap.SugaredLogger
	stop        chan struct{}
}

func NewCatalogRefresherService(businessDao *redis.RedisBusinessDAO, fixturePath string, logger *zap.SugaredLogger) *CatalogRefresherService {
	return &CatalogRefresherService{
		businessDao: businessDao,
		fixturePath: fixturePath,
		logger:      logger,
		stop:        make(chan struct{}),
	}
}

// RefreshCatalog reads the export file and upserts every business. A
// business that fails to upsert is logged and skipped; the rest of the batch
// still loads.
func (cr *CatalogRefresherService) RefreshCatalog() error {
	businesses, err := util.ReadBusinessesFromJSON(cr.fixturePath)
	if err != nil {
		return fmt.Errorf("failed to read catalog export: %w", err)
	}

	cr.logger.Infow("refreshing catalog", "path", cr.fixturePath, "businesses", len(businesses))

	seen := make(map[string]struct{}, len(businesses))
	loaded := 0
	for _, b := range businesses {
		if _, dup := seen[b.ID]; dup {
			cr.logger.Warnw("skipping duplicate business in export", "business_id", b.ID)
			continue
		}
		seen[b.ID] = struct{}{}

		if err := cr.businessDao.UpsertBusiness(b); err != nil {
			cr.logger.Errorw("failed to upsert business", "business_id", b.ID, "error", err)
			continue
		}
		loaded++
	}

	cr.logger.Infow("catalog refresh finished", "loaded", loaded)
	return nil
}

// StartPeriodicJob refreshes the catalog on the given interval until Stop is
// called.
func (cr *CatalogRefresherService) StartPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.RefreshCatalog(); err != nil {
					cr.logger.Errorw("periodic catalog refresh failed", "error", err)
				}
			case <-cr.stop:
				return
			}
		}
	}()
}

// Stop terminates the periodic job.
func (cr *CatalogRefresherService) Stop() {
	close(cr.stop)
}

package services

import (
	"fmt"

	"go.uber.org/zap"

	"discovery-server/dao/redis"
	"discovery-server/models"
	"discovery-server/search"
)

// BusinessCatalog is the slice of the DAO the discovery service depends on.
type BusinessCatalog interface {
	GetAllBusinesses() ([]models.Business, error)
	GetNearbyBusinesses(lat, lng, radiusKm float64) ([]models.Business, error)
}

// DiscoveryService glues the catalog collaborator to the ranking pipeline:
// load candidates, rank them, hand the ordered list back. Authorization and
// visibility filtering happen upstream of the catalog; pagination happens
// downstream in the rendering layer.
type DiscoveryService struct {
	catalog  BusinessCatalog
	pipeline *search.Pipeline
	logger   *zap.SugaredLogger
}

// NewDiscoveryService constructs a DiscoveryService.
func NewDiscoveryService(catalog BusinessCatalog, pipeline *search.Pipeline, logger *zap.SugaredLogger) *DiscoveryService {
	return &DiscoveryService{
		catalog:  catalog,
		pipeline: pipeline,
		logger:   logger,
	}
}

// Search loads the candidate catalog and ranks it against the query.
func (s *DiscoveryService) Search(query models.SearchQuery) ([]models.SearchResult, error) {
	candidates, err := s.catalog.GetAllBusinesses()
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	return s.pipeline.Search(candidates, query), nil
}

// GetNearby returns geo-indexed businesses within the radius, unranked.
func (s *DiscoveryService) GetNearby(lat, lng, radiusKm float64) ([]models.Business, error) {
	return s.catalog.GetNearbyBusinesses(lat, lng, radiusKm)
}

// interface check against the concrete DAO
var _ BusinessCatalog = (*redis.RedisBusinessDAO)(nil)

package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"discovery-server/db"
	"discovery-server/models"
)

const BUSINESSES_GEO_KEY_V1 = "businesses_geo_v1"
const BUSINESSES_PLACE_MEMBER_FORMAT_V1 = "businesses_place_v1:%s"

// RedisBusinessDAO handles business catalog operations using Redis. Every
// business's JSON lives under its member key; businesses with coordinates
// additionally join the geo index so radius queries can find them.
type RedisBusinessDAO struct {
	client db.RedisClient
	logger *zap.SugaredLogger
}

// NewRedisBusinessDAO initializes a RedisBusinessDAO with the Redis client.
func NewRedisBusinessDAO(client db.RedisClient, logger *zap.SugaredLogger) *RedisBusinessDAO {
	return &RedisBusinessDAO{client: client, logger: logger}
}

// UpsertBusiness stores the business JSON, geo-indexed when it has
// coordinates.
func (dao *RedisBusinessDAO) UpsertBusiness(b models.Business) error {
	memberKey := fmt.Sprintf(BUSINESSES_PLACE_MEMBER_FORMAT_V1, b.ID)

	if b.Coordinates != nil {
		ctx := dao.client.GetContext()
		return dao.client.AddLocationWithJSON(ctx, BUSINESSES_GEO_KEY_V1, memberKey, b.Coordinates.Lat, b.Coordinates.Lng, b)
	}

	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal business %s: %w", b.ID, err)
	}
	return dao.client.Set(memberKey, string(data))
}

// GetAllBusinesses returns the whole catalog, including businesses without
// coordinates. Entries whose JSON fails to parse are skipped rather than
// failing the batch.
func (dao *RedisBusinessDAO) GetAllBusinesses() ([]models.Business, error) {
	pattern := fmt.Sprintf(BUSINESSES_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list business keys: %w", err)
	}

	businesses := make([]models.Business, 0, len(keys))
	for _, key := range keys {
		data, err := dao.client.Get(key)
		if err != nil {
			dao.logger.Warnw("skipping business without payload", "key", key, "error", err)
			continue
		}
		var b models.Business
		if err := json.Unmarshal([]byte(data), &b); err != nil {
			dao.logger.Warnw("skipping malformed business JSON", "key", key, "error", err)
			continue
		}
		businesses = append(businesses, b)
	}
	return businesses, nil
}

// GetNearbyBusinesses retrieves geo-indexed businesses within a radius (km).
func (dao *RedisBusinessDAO) GetNearbyBusinesses(lat, lng, radiusKm float64) ([]models.Business, error) {
	businessesJSON, err := dao.client.GetLocationsWithinRadius(BUSINESSES_GEO_KEY_V1, lat, lng, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby businesses: %w", err)
	}

	businesses := make([]models.Business, 0, len(businessesJSON))
	for _, data := range businessesJSON {
		var b models.Business
		if err := json.Unmarshal([]byte(data), &b); err != nil {
			dao.logger.Warnw("skipping malformed business JSON", "error", err)
			continue
		}
		businesses = append(businesses, b)
	}
	return businesses, nil
}

// ListAllBusinessIDs returns the IDs of every stored business.
func (dao *RedisBusinessDAO) ListAllBusinessIDs() ([]string, error) {
	pattern := fmt.Sprintf(BUSINESSES_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list business keys: %w", err)
	}

	prefix := fmt.Sprintf(BUSINESSES_PLACE_MEMBER_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteBusiness removes a business from the catalog.
func (dao *RedisBusinessDAO) DeleteBusiness(id string) error {
	key := fmt.Sprintf(BUSINESSES_PLACE_MEMBER_FORMAT_V1, id)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete business key %s: %w", key, err)
	}
	dao.logger.Debugw("deleted business", "business_id", id)
	return nil
}

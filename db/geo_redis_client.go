package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GeoRedisClient implements RedisClient on a real Redis connection, pairing
// a GEO index with per-member JSON values.
type GeoRedisClient struct {
	client *redis.Client
	ctx    context.Context
	logger *zap.SugaredLogger
}

func NewGeoRedisClient(ctx context.Context, client *redis.Client, logger *zap.SugaredLogger) *GeoRedisClient {
	return &GeoRedisClient{
		client: client,
		ctx:    ctx,
		logger: logger,
	}
}

// Set sets a key-value pair in Redis.
func (r *GeoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis.
func (r *GeoRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// AddLocationWithJSON stores a geolocation along with its JSON payload: the
// member goes into the geo index with GEOADD and the serialized data under
// the member key.
func (r *GeoRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.client.GeoAdd(ctx, geoKey, &redis.GeoLocation{
		Name:      memberKey,
		Latitude:  lat,
		Longitude: lng,
	}).Result(); err != nil {
		return fmt.Errorf("failed to add geolocation: %w", err)
	}

	if err := r.client.Set(ctx, memberKey, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to set JSON data: %w", err)
	}

	r.logger.Debugw("added geolocation and JSON", "member", memberKey)
	return nil
}

// GetLocationsWithinRadius finds all members of the geo index within the
// given radius (km) and returns their JSON payloads. Members whose payload
// is missing are skipped.
func (r *GeoRedisClient) GetLocationsWithinRadius(key string, lat, lng, radiusKm float64) ([]string, error) {
	results, err := r.client.GeoRadius(r.ctx, key, lng, lat, &redis.GeoRadiusQuery{
		Radius: radiusKm,
		Unit:   "km",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby locations: %w", err)
	}

	var objects []string
	for _, loc := range results {
		data, err := r.client.Get(r.ctx, loc.Name).Result()
		if err != nil {
			r.logger.Warnw("skipping member without payload", "member", loc.Name, "error", err)
			continue
		}
		objects = append(objects, data)
	}

	return objects, nil
}

func (r *GeoRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *GeoRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *GeoRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *GeoRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

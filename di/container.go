package di

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"discovery-server/config"
	redisdao "discovery-server/dao/redis"
	"discovery-server/db"
	"discovery-server/logging"
	"discovery-server/search"
	"discovery-server/server"
	"discovery-server/server/handlers"
	services "discovery-server/service"
)

// Container wires the application dependencies by hand. Construction order
// follows the dependency graph: infra first, services on top, transport last.
type Container struct {
	Config                  *config.Config
	Logger                  *zap.SugaredLogger
	RedisClient             db.RedisClient
	BusinessDAO             *redisdao.RedisBusinessDAO
	Pipeline                *search.Pipeline
	DiscoveryService        *services.DiscoveryService
	CatalogRefresherService *services.CatalogRefresherService
	SearchHandler           *handlers.SearchHandler
	Router                  *server.Router
	DiscoveryHttpServer     *server.DiscoveryHttpServer

	rawRedis *goredis.Client
}

// NewContainer builds the full object graph from the given configuration.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format)

	rawRedis := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	redisClient := db.NewGeoRedisClient(ctx, rawRedis, logger)
	if err := redisClient.Ping(); err != nil {
		return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Redis.Address, err)
	}

	loc, err := time.LoadLocation(cfg.Search.Timezone)
	if err != nil {
		logger.Warnw("unknown timezone, falling back to UTC", "timezone", cfg.Search.Timezone, "error", err)
		loc = time.UTC
	}
	clock := search.NewLocationClock(loc)
	rng := search.NewMathRandomSource()

	pipeline, err := search.NewPipeline(clock, rng, cfg.Search.AnnotatePoolSize, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build search pipeline: %w", err)
	}

	businessDAO := redisdao.NewRedisBusinessDAO(redisClient, logger)
	discoveryService := services.NewDiscoveryService(businessDAO, pipeline, logger)
	refresherService := services.NewCatalogRefresherService(businessDAO, cfg.Catalog.FixturePath, logger)

	searchHandler := handlers.NewSearchHandler(discoveryService, cfg.Search.NearbyRadiusKm, logger)
	muxRouter := mux.NewRouter()
	router := server.NewRouter(searchHandler, muxRouter)
	httpServer := server.NewDiscoveryHttpServer(router, muxRouter, cfg.Server.Port, logger)

	return &Container{
		Config:                  cfg,
		Logger:                  logger,
		RedisClient:             redisClient,
		BusinessDAO:             businessDAO,
		Pipeline:                pipeline,
		DiscoveryService:        discoveryService,
		CatalogRefresherService: refresherService,
		SearchHandler:           searchHandler,
		Router:                  router,
		DiscoveryHttpServer:     httpServer,
		rawRedis:                rawRedis,
	}, nil
}

// Close releases the resources the container owns.
func (c *Container) Close() {
	c.CatalogRefresherService.Stop()
	c.Pipeline.Release()
	if err := c.rawRedis.Close(); err != nil {
		c.Logger.Warnw("error closing redis client", "error", err)
	}
	_ = c.Logger.Sync()
}

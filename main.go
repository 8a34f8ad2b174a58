package main

import (
	"context"
	"log"
	"time"

	"discovery-server/config"
	"discovery-server/di"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.NewContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to build application container: %v", err)
	}
	defer container.Close()

	if err := container.CatalogRefresherService.RefreshCatalog(); err != nil {
		container.Logger.Errorw("initial catalog refresh failed, serving whatever Redis already holds", "error", err)
	}
	container.CatalogRefresherService.StartPeriodicJob(
		time.Duration(cfg.Catalog.RefreshIntervalMinutes) * time.Minute)

	container.DiscoveryHttpServer.Start()
}

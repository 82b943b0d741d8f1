// Package bootstrap handles application initialization and lifecycle
// management for the search service.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dataplatform-hub/search/internal/logger"
	"github.com/dataplatform-hub/search/internal/profiling"
)

// Start initializes and starts the search application.
func Start() error {
	// Phase 0: Start profiling server (if enabled)
	profiling.StartPprofServer()

	// Phase 1: Load config and create logger
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := CreateLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting Search Service",
		logger.String("name", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
	)

	// Phase 2: Setup Elasticsearch and repositories
	esClient, err := SetupElasticsearch(cfg)
	if err != nil {
		return fmt.Errorf("failed to setup Elasticsearch: %w", err)
	}
	log.Info("Elasticsearch client initialized")

	repos := SetupRepositories(cfg, esClient, log)

	// Phase 3: Make sure every entity index exists before serving traffic
	if cfg.Indices.AutoCreate {
		if ensureErr := EnsureIndices(context.Background(), repos, log); ensureErr != nil {
			return fmt.Errorf("failed to ensure indices: %w", ensureErr)
		}
		log.Info("Indices verified")
	}

	// Phase 4: Setup and run HTTP server
	server := SetupHTTPServer(cfg, esClient, repos, log)

	if runErr := server.RunWithGracefulShutdown(context.Background()); runErr != nil {
		log.Error("Server error", logger.Error(runErr))
		return fmt.Errorf("server error: %w", runErr)
	}

	log.Info("Search Service stopped")
	return nil
}

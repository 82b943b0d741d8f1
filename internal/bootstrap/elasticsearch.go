package bootstrap

import (
	"context"
	"fmt"

	"github.com/dataplatform-hub/search/internal/config"
	"github.com/dataplatform-hub/search/internal/elasticsearch"
	"github.com/dataplatform-hub/search/internal/elasticsearch/mappings"
	"github.com/dataplatform-hub/search/internal/logger"
	"github.com/dataplatform-hub/search/internal/service"
)

// SetupElasticsearch creates an Elasticsearch client.
func SetupElasticsearch(cfg *config.Config) (*elasticsearch.Client, error) {
	esConfig := &elasticsearch.Config{
		URL:        cfg.Elasticsearch.URL,
		Username:   cfg.Elasticsearch.Username,
		Password:   cfg.Elasticsearch.Password,
		MaxRetries: cfg.Elasticsearch.MaxRetries,
		Timeout:    cfg.Elasticsearch.Timeout,
	}

	esClient, err := elasticsearch.NewClient(esConfig)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}
	return esClient, nil
}

// Repositories holds the per-entity repositories of the service.
type Repositories struct {
	MetadataItems      *service.MetadataItemCRUD
	ItemActivities     *service.ItemActivityCRUD
	DatasetActivities  *service.DatasetActivityCRUD
	CombinedActivities *service.DatasetAndItemActivityCRUD
}

// SetupRepositories builds the repositories over the configured indices.
func SetupRepositories(cfg *config.Config, esClient *elasticsearch.Client, log logger.Logger) *Repositories {
	indices := cfg.Indices
	settings := mappings.GetIndexSettings(indices.Shards, indices.Replicas)

	return &Repositories{
		MetadataItems:      service.NewMetadataItemCRUD(esClient, indices.MetadataItems, settings, log),
		ItemActivities:     service.NewItemActivityCRUD(esClient, indices.ItemActivityLogs, settings, log),
		DatasetActivities:  service.NewDatasetActivityCRUD(esClient, indices.DatasetActivityLogs, settings, log),
		CombinedActivities: service.NewDatasetAndItemActivityCRUD(esClient, indices.DatasetActivityLogs, indices.ItemActivityLogs, log),
	}
}

// EnsureIndices creates every missing entity index before the service
// starts accepting traffic. Any failure aborts startup.
func EnsureIndices(ctx context.Context, repos *Repositories, log logger.Logger) error {
	checked := []interface {
		Index() string
		EnsureIndex(ctx context.Context) error
	}{
		repos.MetadataItems,
		repos.ItemActivities,
		repos.DatasetActivities,
	}

	for _, repo := range checked {
		if err := repo.EnsureIndex(ctx); err != nil {
			return fmt.Errorf("ensure index %s: %w", repo.Index(), err)
		}
		log.Debug("Index check passed", logger.String("index", repo.Index()))
	}

	return nil
}

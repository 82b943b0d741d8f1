package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dataplatform-hub/search/internal/domain"
	"github.com/dataplatform-hub/search/internal/elasticsearch"
	"github.com/dataplatform-hub/search/internal/elasticsearch/mappings"
	"github.com/dataplatform-hub/search/internal/logger"
)

// MetadataItemCRUD manages documents in the metadata items index.
type MetadataItemCRUD struct {
	CRUD[domain.MetadataItem]
}

// NewMetadataItemCRUD returns a repository over the given index.
func NewMetadataItemCRUD(es ESClient, index string, settings map[string]any, log logger.Logger) *MetadataItemCRUD {
	return &MetadataItemCRUD{
		CRUD: CRUD[domain.MetadataItem]{
			es:       es,
			indices:  []string{index},
			mappings: mappings.GetMetadataItemMapping(),
			settings: settings,
			parse:    parseMetadataItem,
			logger:   log,
		},
	}
}

func parseMetadataItem(doc *elasticsearch.Document) (domain.MetadataItem, error) {
	var item domain.MetadataItem
	if err := json.Unmarshal(doc.Source, &item); err != nil {
		return item, err
	}
	item.PK = doc.ID

	return item, nil
}

// GetProjectSizeUsage returns the aggregated project storage usage for the
// filtered period, grouped into per-zone monthly buckets.
func (c *MetadataItemCRUD) GetProjectSizeUsage(
	ctx context.Context,
	filter *domain.ProjectSizeUsageFilter,
	timeZone string,
	groupBy domain.SizeGroupBy,
) (*domain.SizeUsage, error) {
	q := elasticsearch.NewSearchQuery()
	filter.Apply(q)

	handler := &SizeUsageHandler{
		FromDate: filter.FromDate,
		ToDate:   filter.ToDate,
		TimeZone: timeZone,
		GroupBy:  groupBy,
	}

	raw, err := c.Aggregate(ctx, map[string]any{
		"query": q.Build(),
		"size":  0,
		"aggs":  handler.Aggregations(),
	})
	if err != nil {
		return nil, err
	}

	return handler.ProcessSearchResult(raw)
}

// GetProjectStatistics returns the total count and size of active project
// files, optionally narrowed to one parent path or zone.
func (c *MetadataItemCRUD) GetProjectStatistics(
	ctx context.Context,
	projectCode string,
	parentPath *string,
	zone *int,
) (*domain.SizeStatistics, error) {
	q := elasticsearch.NewSearchQuery()
	q.MatchTerm("type", string(domain.MetadataItemTypeFile))
	q.MatchTerm("container_type", string(domain.ContainerTypeProject))
	q.MatchTerm("container_code", projectCode)
	q.MatchTerm("status.keyword", string(domain.MetadataItemStatusActive))
	if parentPath != nil {
		q.MatchText("parent_path.keyword", *parentPath)
	}
	if zone != nil {
		q.MatchTerm("zone", *zone)
	}

	raw, err := c.Aggregate(ctx, map[string]any{
		"query":            q.Build(),
		"size":             0,
		"track_total_hits": true,
		"aggs": map[string]any{
			"size": map[string]any{"sum": map[string]any{"field": "size"}},
		},
	})
	if err != nil {
		return nil, err
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
		} `json:"hits"`
		Aggregations struct {
			Size struct {
				Value float64 `json:"value"`
			} `json:"size"`
		} `json:"aggregations"`
	}
	if err := json.Unmarshal(raw, &esResp); err != nil {
		return nil, fmt.Errorf("failed to decode statistics response: %w", err)
	}

	return &domain.SizeStatistics{
		Count: esResp.Hits.Total.Value,
		Size:  int64(esResp.Aggregations.Size.Value),
	}, nil
}

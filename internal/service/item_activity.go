package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dataplatform-hub/search/internal/domain"
	"github.com/dataplatform-hub/search/internal/elasticsearch"
	"github.com/dataplatform-hub/search/internal/elasticsearch/mappings"
	"github.com/dataplatform-hub/search/internal/logger"
)

// ItemActivityCRUD manages documents in the item activity logs index.
type ItemActivityCRUD struct {
	CRUD[domain.ItemActivity]
}

// NewItemActivityCRUD returns a repository over the given index.
func NewItemActivityCRUD(es ESClient, index string, settings map[string]any, log logger.Logger) *ItemActivityCRUD {
	return &ItemActivityCRUD{
		CRUD: CRUD[domain.ItemActivity]{
			es:       es,
			indices:  []string{index},
			mappings: mappings.GetItemActivityMapping(),
			settings: settings,
			parse:    parseItemActivity,
			logger:   log,
		},
	}
}

func parseItemActivity(doc *elasticsearch.Document) (domain.ItemActivity, error) {
	var activity domain.ItemActivity
	if err := json.Unmarshal(doc.Source, &activity); err != nil {
		return activity, err
	}
	activity.PK = doc.ID

	return activity, nil
}

// parseUTCOffset parses a "+HH:MM" or "-HH:MM" offset into a fixed location.
func parseUTCOffset(timeZone string) (*time.Location, error) {
	var sign rune
	var hours, minutes int
	if _, err := fmt.Sscanf(timeZone, "%c%02d:%02d", &sign, &hours, &minutes); err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", timeZone, err)
	}

	offset := hours*3600 + minutes*60
	if sign == '-' {
		offset = -offset
	}

	return time.FixedZone(timeZone, offset), nil
}

// GetProjectTransferStatistics returns the upload and download counts for
// the calendar day the given moment falls on in the given time zone. The
// day boundaries are taken at UTC clock time, matching how activity
// timestamps are queried elsewhere.
func (c *ItemActivityCRUD) GetProjectTransferStatistics(
	ctx context.Context,
	projectCode string,
	date time.Time,
	timeZone string,
	parentPath *string,
	zone *int,
) (*domain.TransferStatistics, error) {
	loc, err := parseUTCOffset(timeZone)
	if err != nil {
		return nil, err
	}

	year, month, day := date.In(loc).Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	endOfDay := time.Date(year, month, day, 23, 59, 59, 0, time.UTC)

	q := elasticsearch.NewSearchQuery()
	q.MatchTerm("container_type", string(domain.ContainerTypeProject))
	q.MatchTerm("container_code", projectCode)
	q.MatchRange("activity_time", map[string]any{"gte": startOfDay.Unix(), "lte": endOfDay.Unix()})
	q.MatchMultipleTerms("activity_type", []string{
		string(domain.ItemActivityTypeUpload),
		string(domain.ItemActivityTypeDownload),
	})
	if parentPath != nil {
		q.MatchText("item_parent_path.keyword", *parentPath)
	}
	if zone != nil {
		q.MatchTerm("zone", *zone)
	}

	raw, err := c.Aggregate(ctx, map[string]any{
		"query": q.Build(),
		"size":  0,
		"aggs": map[string]any{
			"activity_types": map[string]any{"terms": map[string]any{"field": "activity_type"}},
		},
	})
	if err != nil {
		return nil, err
	}

	var esResp struct {
		Aggregations struct {
			ActivityTypes struct {
				Buckets []struct {
					Key      string `json:"key"`
					DocCount int64  `json:"doc_count"`
				} `json:"buckets"`
			} `json:"activity_types"`
		} `json:"aggregations"`
	}
	if err := json.Unmarshal(raw, &esResp); err != nil {
		return nil, fmt.Errorf("failed to decode transfer statistics response: %w", err)
	}

	statistics := domain.TransferStatistics{}
	for _, bucket := range esResp.Aggregations.ActivityTypes.Buckets {
		// Buckets with unexpected keys are ignored.
		switch domain.ItemActivityType(bucket.Key) {
		case domain.ItemActivityTypeUpload:
			statistics.Uploaded += bucket.DocCount
		case domain.ItemActivityTypeDownload:
			statistics.Downloaded += bucket.DocCount
		}
	}

	return &statistics, nil
}

// GetProjectFileActivity returns the aggregated project file activity for
// the filtered period as a day keyed count map.
func (c *ItemActivityCRUD) GetProjectFileActivity(
	ctx context.Context,
	filter *domain.ProjectFileActivityFilter,
	timeZone string,
	groupBy domain.ActivityGroupBy,
) (map[string]int64, error) {
	q := elasticsearch.NewSearchQuery()
	filter.Apply(q)

	handler := &FileActivityHandler{
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

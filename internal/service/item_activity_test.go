package service //nolint:testpackage // exercising repository internals

import (
	"context"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataplatform-hub/search/internal/domain"
	"github.com/dataplatform-hub/search/internal/logger"
)

func TestParseUTCOffset(t *testing.T) {
	tests := []struct {
		timeZone   string
		wantOffset int
	}{
		{"+00:00", 0},
		{"+08:00", 8 * 3600},
		{"-05:30", -(5*3600 + 30*60)},
	}

	for _, tt := range tests {
		t.Run(tt.timeZone, func(t *testing.T) {
			loc, err := parseUTCOffset(tt.timeZone)
			require.NoError(t, err)

			_, offset := time.Now().In(loc).Zone()
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestParseUTCOffset_RejectsInvalidValue(t *testing.T) {
	_, err := parseUTCOffset("UTC")
	require.Error(t, err)
}

func TestGetProjectTransferStatistics(t *testing.T) {
	var capturedBody map[string]any

	es := &stubESClient{
		searchFn: func(_ context.Context, indices []string, body map[string]any) (*esapi.Response, error) {
			assert.Equal(t, []string{"items-activity-logs"}, indices)
			capturedBody = body
			return searchResult(`{
				"aggregations": {
					"activity_types": {
						"buckets": [
							{"key": "upload", "doc_count": 5},
							{"key": "download", "doc_count": 3},
							{"key": "delete", "doc_count": 7}
						]
					}
				}
			}`), nil
		},
	}

	crud := NewItemActivityCRUD(es, "items-activity-logs", nil, logger.NewNop())

	// 20:00 UTC is already the next day in +08:00.
	now := time.Date(2022, 1, 1, 20, 0, 0, 0, time.UTC)
	statistics, err := crud.GetProjectTransferStatistics(
		context.Background(), "testproject", now, "+08:00", nil, nil,
	)
	require.NoError(t, err)

	// Unknown activity types are ignored.
	assert.Equal(t, int64(5), statistics.Uploaded)
	assert.Equal(t, int64(3), statistics.Downloaded)

	assert.Equal(t, 0, capturedBody["size"])

	must := capturedBody["query"].(map[string]any)["bool"].(map[string]any)["must"].([]map[string]any)
	var timeRange map[string]any
	for _, clause := range must {
		if rangeClause, ok := clause["range"].(map[string]any); ok {
			timeRange = rangeClause["activity_time"].(map[string]any)
		}
	}
	require.NotNil(t, timeRange)

	// The day window is 2022-01-02 at UTC clock time.
	startOfDay := time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC)
	endOfDay := time.Date(2022, 1, 2, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, startOfDay.Unix(), timeRange["gte"])
	assert.Equal(t, endOfDay.Unix(), timeRange["lte"])
}

func TestGetProjectTransferStatistics_OptionalCriteria(t *testing.T) {
	var capturedBody map[string]any

	es := &stubESClient{
		searchFn: func(_ context.Context, _ []string, body map[string]any) (*esapi.Response, error) {
			capturedBody = body
			return searchResult(`{"aggregations": {"activity_types": {"buckets": []}}}`), nil
		},
	}

	crud := NewItemActivityCRUD(es, "items-activity-logs", nil, logger.NewNop())

	parentPath := "admin"
	zone := 0
	_, err := crud.GetProjectTransferStatistics(
		context.Background(), "testproject", time.Now(), "+00:00", &parentPath, &zone,
	)
	require.NoError(t, err)

	must := capturedBody["query"].(map[string]any)["bool"].(map[string]any)["must"].([]map[string]any)

	// parent_path and zone are applied whenever provided, zero included.
	assert.Contains(t, must, map[string]any{"match": map[string]any{"item_parent_path.keyword": "admin"}})
	assert.Contains(t, must, map[string]any{"term": map[string]any{"zone": 0}})
}

func TestGetProjectFileActivity(t *testing.T) {
	var capturedBody map[string]any

	es := &stubESClient{
		searchFn: func(_ context.Context, _ []string, body map[string]any) (*esapi.Response, error) {
			capturedBody = body
			return searchResult(`{
				"aggregations": {
					"group_by_activity_time": {
						"buckets": {
							"2022-01-01": {"doc_count": 2}
						}
					}
				}
			}`), nil
		},
	}

	crud := NewItemActivityCRUD(es, "items-activity-logs", nil, logger.NewNop())

	filter := &domain.ProjectFileActivityFilter{
		ProjectCode:  "testproject",
		ActivityType: domain.ItemActivityTypeDownload,
		FromDate:     date(2022, 1, 1),
		ToDate:       date(2022, 1, 3),
	}

	activity, err := crud.GetProjectFileActivity(
		context.Background(), filter, "+00:00", domain.ActivityGroupByDay,
	)
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"2022-01-01": 2, "2022-01-02": 0}, activity)
	assert.Equal(t, 0, capturedBody["size"])
	assert.Contains(t, capturedBody, "aggs")
}

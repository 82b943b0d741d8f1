package service //nolint:testpackage // exercising repository internals

import (
	"context"
	"testing"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataplatform-hub/search/internal/domain"
	"github.com/dataplatform-hub/search/internal/logger"
)

func TestDatasetAndItemActivityCRUD_ListTagsRecordsWithOrigin(t *testing.T) {
	es := &stubESClient{
		searchFn: func(_ context.Context, indices []string, _ map[string]any) (*esapi.Response, error) {
			assert.Equal(t, []string{"datasets-activity-logs", "items-activity-logs"}, indices)
			return searchResult(`{
				"hits": {
					"total": {"value": 2},
					"hits": [
						{
							"_id": "a1",
							"_index": "datasets-activity-logs",
							"_source": {
								"activity_type": "release",
								"activity_time": 1646370367,
								"container_code": "testdataset",
								"user": "admin",
								"version": "1.0"
							}
						},
						{
							"_id": "b2",
							"_index": "items-activity-logs",
							"_source": {
								"activity_type": "upload",
								"activity_time": 1646370400,
								"container_code": "testproject",
								"user": "admin",
								"zone": 1
							}
						}
					]
				}
			}`), nil
		},
	}

	crud := NewDatasetAndItemActivityCRUD(es, "datasets-activity-logs", "items-activity-logs", logger.NewNop())

	page, err := crud.List(context.Background(), domain.NewPagination(1, 10), nil, nil)
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)

	dataset := page.Entries[0]
	assert.Equal(t, domain.ActivityIndexDataset, dataset.Index)
	assert.Equal(t, "release", dataset.ActivityType)
	require.NotNil(t, dataset.Version)
	assert.Equal(t, "1.0", *dataset.Version)
	assert.Nil(t, dataset.Zone)

	item := page.Entries[1]
	assert.Equal(t, domain.ActivityIndexFile, item.Index)
	assert.Equal(t, "upload", item.ActivityType)
	require.NotNil(t, item.Zone)
	assert.Equal(t, 1, *item.Zone)
	assert.Nil(t, item.Version)
}

func TestDatasetActivityCRUD_ListParsesDocumentPK(t *testing.T) {
	es := &stubESClient{
		searchFn: func(_ context.Context, indices []string, _ map[string]any) (*esapi.Response, error) {
			assert.Equal(t, []string{"datasets-activity-logs"}, indices)
			return searchResult(`{
				"hits": {
					"total": {"value": 1},
					"hits": [
						{
							"_id": "c3",
							"_index": "datasets-activity-logs",
							"_source": {
								"activity_type": "schema_create",
								"activity_time": 1646370367,
								"container_code": "testdataset",
								"user": "admin"
							}
						}
					]
				}
			}`), nil
		},
	}

	crud := NewDatasetActivityCRUD(es, "datasets-activity-logs", nil, logger.NewNop())

	page, err := crud.List(context.Background(), domain.NewPagination(1, 10), nil, nil)
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)

	activity := page.Entries[0]
	assert.Equal(t, "c3", activity.PK)
	assert.Equal(t, domain.DatasetActivityTypeSchemaCreate, activity.ActivityType)
}

package service

import (
	"encoding/json"

	"github.com/dataplatform-hub/search/internal/domain"
	"github.com/dataplatform-hub/search/internal/elasticsearch"
	"github.com/dataplatform-hub/search/internal/elasticsearch/mappings"
	"github.com/dataplatform-hub/search/internal/logger"
)

// DatasetActivityCRUD manages documents in the dataset activity logs index.
type DatasetActivityCRUD struct {
	CRUD[domain.DatasetActivity]
}

// NewDatasetActivityCRUD returns a repository over the given index.
func NewDatasetActivityCRUD(es ESClient, index string, settings map[string]any, log logger.Logger) *DatasetActivityCRUD {
	return &DatasetActivityCRUD{
		CRUD: CRUD[domain.DatasetActivity]{
			es:       es,
			indices:  []string{index},
			mappings: mappings.GetDatasetActivityMapping(),
			settings: settings,
			parse:    parseDatasetActivity,
			logger:   log,
		},
	}
}

func parseDatasetActivity(doc *elasticsearch.Document) (domain.DatasetActivity, error) {
	var activity domain.DatasetActivity
	if err := json.Unmarshal(doc.Source, &activity); err != nil {
		return activity, err
	}
	activity.PK = doc.ID

	return activity, nil
}

// DatasetAndItemActivityCRUD lists dataset and item activity logs together
// across both indices, tagging each record with the index it came from.
type DatasetAndItemActivityCRUD struct {
	CRUD[domain.DatasetAndItemActivity]
}

// NewDatasetAndItemActivityCRUD returns a repository searching the dataset
// activity index first, then the item activity index.
func NewDatasetAndItemActivityCRUD(
	es ESClient,
	datasetIndex, itemIndex string,
	log logger.Logger,
) *DatasetAndItemActivityCRUD {
	indexToActivityIndex := map[string]domain.ActivityIndex{
		datasetIndex: domain.ActivityIndexDataset,
		itemIndex:    domain.ActivityIndexFile,
	}

	return &DatasetAndItemActivityCRUD{
		CRUD: CRUD[domain.DatasetAndItemActivity]{
			es:      es,
			indices: []string{datasetIndex, itemIndex},
			parse: func(doc *elasticsearch.Document) (domain.DatasetAndItemActivity, error) {
				var activity domain.DatasetAndItemActivity
				if err := json.Unmarshal(doc.Source, &activity); err != nil {
					return activity, err
				}
				activity.Index = indexToActivityIndex[doc.Index]

				return activity, nil
			},
			logger: log,
		},
	}
}

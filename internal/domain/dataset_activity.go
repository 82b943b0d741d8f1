package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/dataplatform-hub/search/internal/elasticsearch"
)

// ActivityIndex tags a combined activity record with its origin. Item
// activity is exposed outside as "file".
type ActivityIndex string

// Available activity origins.
const (
	ActivityIndexFile    ActivityIndex = "file"
	ActivityIndexDataset ActivityIndex = "dataset"
)

// DatasetActivityType lists the dataset activity types.
type DatasetActivityType string

// Available dataset activity types.
const (
	DatasetActivityTypeDownload       DatasetActivityType = "download"
	DatasetActivityTypeUpdate         DatasetActivityType = "update"
	DatasetActivityTypeCreate         DatasetActivityType = "create"
	DatasetActivityTypeRelease        DatasetActivityType = "release"
	DatasetActivityTypeSchemaDelete   DatasetActivityType = "schema_delete"
	DatasetActivityTypeSchemaUpdate   DatasetActivityType = "schema_update"
	DatasetActivityTypeSchemaCreate   DatasetActivityType = "schema_create"
	DatasetActivityTypeTemplateDelete DatasetActivityType = "template_delete"
	DatasetActivityTypeTemplateUpdate DatasetActivityType = "template_update"
	DatasetActivityTypeTemplateCreate DatasetActivityType = "template_create"
)

// DatasetActivityChange describes one changed property of a dataset.
type DatasetActivityChange struct {
	Property string  `json:"property"`
	OldValue *string `json:"old_value"`
	NewValue *string `json:"new_value"`
}

// DatasetActivity is a dataset activity log document.
type DatasetActivity struct {
	PK            string                  `json:"-"`
	ActivityType  DatasetActivityType     `json:"activity_type"`
	ActivityTime  Timestamp               `json:"activity_time"`
	ContainerCode string                  `json:"container_code"`
	Version       *string                 `json:"version"`
	TargetName    *string                 `json:"target_name"`
	User          string                  `json:"user"`
	Changes       []DatasetActivityChange `json:"changes"`
	NetworkOrigin string                  `json:"network_origin,omitempty"`
}

// DatasetAndItemActivity is the combined view over dataset and item
// activity records, discriminated by Index. Item-only fields are nil for
// dataset records and vice versa.
type DatasetAndItemActivity struct {
	Index         ActivityIndex    `json:"index"`
	ActivityType  string           `json:"activity_type"`
	ActivityTime  Timestamp        `json:"activity_time"`
	ContainerCode string           `json:"container_code"`
	User          string           `json:"user"`
	Changes       []map[string]any `json:"changes"`

	// Dataset activity fields.
	Version    *string `json:"version,omitempty"`
	TargetName *string `json:"target_name,omitempty"`

	// Item activity fields.
	ContainerType  *ContainerType `json:"container_type,omitempty"`
	ItemID         *uuid.UUID     `json:"item_id,omitempty"`
	ItemType       *string        `json:"item_type,omitempty"`
	ItemName       *string        `json:"item_name,omitempty"`
	ItemParentPath *string        `json:"item_parent_path,omitempty"`
	Zone           *int           `json:"zone,omitempty"`
	ImportedFrom   *string        `json:"imported_from,omitempty"`
}

// DatasetAndItemActivityFilter holds the optional filter criteria for the
// combined dataset and item activity listing.
type DatasetAndItemActivityFilter struct {
	ActivityType      *string
	ActivityTimeStart *time.Time
	ActivityTimeEnd   *time.Time
	ContainerCode     *string
	Version           *string
	TargetName        *string
	User              *string
	ContainerType     *ContainerType
	ItemID            *uuid.UUID
	ItemType          *string
	ItemName          *string
	ItemParentPath    *string
	Zone              *int
	ImportedFrom      *string
}

// HasCriteria reports whether at least one filter criterion is set.
func (f *DatasetAndItemActivityFilter) HasCriteria() bool {
	return f.ActivityType != nil || f.ActivityTimeStart != nil || f.ActivityTimeEnd != nil ||
		f.ContainerCode != nil || f.Version != nil || f.TargetName != nil || f.User != nil ||
		f.ContainerType != nil || f.ItemID != nil || f.ItemType != nil || f.ItemName != nil ||
		f.ItemParentPath != nil || f.Zone != nil || f.ImportedFrom != nil
}

// Apply adds the filter criteria into the search query.
func (f *DatasetAndItemActivityFilter) Apply(q *elasticsearch.SearchQuery) {
	if f.ActivityType != nil && *f.ActivityType != "" {
		q.MatchTerm("activity_type", *f.ActivityType)
	}

	if f.ActivityTimeStart != nil {
		q.MatchRange("activity_time", map[string]any{"gte": f.ActivityTimeStart.Unix()})
	}

	if f.ActivityTimeEnd != nil {
		q.MatchRange("activity_time", map[string]any{"lte": f.ActivityTimeEnd.Unix()})
	}

	if f.ContainerCode != nil && *f.ContainerCode != "" {
		q.MatchTerm("container_code", *f.ContainerCode)
	}

	if f.Version != nil && *f.Version != "" {
		q.MatchText("version", *f.Version)
	}

	if f.TargetName != nil && *f.TargetName != "" {
		q.MatchText("target_name", *f.TargetName)
	}

	if f.User != nil && *f.User != "" {
		q.MatchText("user", *f.User)
	}

	if f.ContainerType != nil && *f.ContainerType != "" {
		q.MatchTerm("container_type", string(*f.ContainerType))
	}

	if f.ItemID != nil {
		q.MatchTerm("item_id", f.ItemID.String())
	}

	if f.ItemName != nil && *f.ItemName != "" {
		q.MatchText("item_name", *f.ItemName)
	}

	if f.ItemType != nil && *f.ItemType != "" {
		q.MatchTerm("item_type", *f.ItemType)
	}

	if f.ItemParentPath != nil && *f.ItemParentPath != "" {
		q.MatchText("item_parent_path", *f.ItemParentPath)
	}

	if f.Zone != nil && *f.Zone != 0 {
		q.MatchTerm("zone", *f.Zone)
	}

	if f.ImportedFrom != nil && *f.ImportedFrom != "" {
		q.MatchTerm("imported_from", *f.ImportedFrom)
	}
}

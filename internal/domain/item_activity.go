package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/dataplatform-hub/search/internal/elasticsearch"
)

// ActivityGroupBy lists the supported grouping granularities for file
// activity. Only daily grouping is implemented.
type ActivityGroupBy string

// ActivityGroupByDay groups file activity by calendar day.
const ActivityGroupByDay ActivityGroupBy = "day"

// ItemActivityType lists the item activity types.
type ItemActivityType string

// Available item activity types.
const (
	ItemActivityTypeDownload ItemActivityType = "download"
	ItemActivityTypeUpload   ItemActivityType = "upload"
	ItemActivityTypeDelete   ItemActivityType = "delete"
	ItemActivityTypeCopy     ItemActivityType = "copy"
	ItemActivityTypeImport   ItemActivityType = "import"
	ItemActivityTypeCreate   ItemActivityType = "create"
	ItemActivityTypeApprove  ItemActivityType = "approve"
	ItemActivityTypeUpdate   ItemActivityType = "update"
)

// ItemActivityChange describes one changed property of an item.
type ItemActivityChange struct {
	ItemProperty string  `json:"item_property"`
	OldValue     *string `json:"old_value"`
	NewValue     *string `json:"new_value"`
}

// ItemActivity is an item activity log document.
type ItemActivity struct {
	PK             string               `json:"-"`
	ActivityType   ItemActivityType     `json:"activity_type"`
	ActivityTime   Timestamp            `json:"activity_time"`
	ContainerCode  string               `json:"container_code"`
	ContainerType  ContainerType        `json:"container_type"`
	ItemID         *uuid.UUID           `json:"item_id"`
	ItemType       string               `json:"item_type"`
	ItemName       string               `json:"item_name"`
	ItemParentPath string               `json:"item_parent_path"`
	Zone           int                  `json:"zone"`
	User           string               `json:"user"`
	ImportedFrom   *string              `json:"imported_from"`
	Changes        []ItemActivityChange `json:"changes"`
	NetworkOrigin  string               `json:"network_origin,omitempty"`
}

// TransferStatistics is the aggregated upload and download counts.
type TransferStatistics struct {
	Uploaded   int64 `json:"uploaded"`
	Downloaded int64 `json:"downloaded"`
}

// ItemActivityFilter holds the optional filter criteria for item activity
// logs. Listing is always scoped to project containers.
type ItemActivityFilter struct {
	ActivityType      *string
	ActivityTimeStart *time.Time
	ActivityTimeEnd   *time.Time
	ContainerCode     *string
	User              *string
	Zone              *int
}

// HasCriteria reports whether at least one filter criterion is set.
func (f *ItemActivityFilter) HasCriteria() bool {
	return f.ActivityType != nil || f.ActivityTimeStart != nil || f.ActivityTimeEnd != nil ||
		f.ContainerCode != nil || f.User != nil || f.Zone != nil
}

// Apply adds the filter criteria into the search query. The project
// container_type clause is added unconditionally.
func (f *ItemActivityFilter) Apply(q *elasticsearch.SearchQuery) {
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

	q.MatchTerm("container_type", string(ContainerTypeProject))

	if f.User != nil && *f.User != "" {
		q.MatchTerm("user", *f.User)
	}

	if f.Zone != nil && *f.Zone != 0 {
		q.MatchTerm("zone", *f.Zone)
	}
}

// ProjectFileActivityFilter holds the fixed criteria for project file
// activity.
type ProjectFileActivityFilter struct {
	ProjectCode  string
	ActivityType ItemActivityType
	FromDate     time.Time
	ToDate       time.Time
	User         *string
}

// Apply adds the filter criteria into the search query.
func (f *ProjectFileActivityFilter) Apply(q *elasticsearch.SearchQuery) {
	q.MatchTerm("container_type", string(ContainerTypeProject))
	q.MatchTerm("container_code", f.ProjectCode)
	q.MatchTerm("activity_type", string(f.ActivityType))
	q.MatchRange("activity_time", map[string]any{
		"gte": f.FromDate.Unix(),
		"lt":  f.ToDate.Unix(),
	})
	if f.User != nil {
		q.MatchTerm("user", *f.User)
	}
}

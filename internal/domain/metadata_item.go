package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/dataplatform-hub/search/internal/elasticsearch"
)

// SizeGroupBy lists the supported grouping granularities for size usage.
// Only monthly grouping is implemented.
type SizeGroupBy string

// SizeGroupByMonth groups size usage by calendar month.
const SizeGroupByMonth SizeGroupBy = "month"

// MetadataItemType lists the metadata item types.
type MetadataItemType string

// Available metadata item types.
const (
	MetadataItemTypeFile       MetadataItemType = "file"
	MetadataItemTypeFolder     MetadataItemType = "folder"
	MetadataItemTypeNameFolder MetadataItemType = "name_folder"
)

// MetadataItemStatus lists the metadata item statuses.
type MetadataItemStatus string

// Available metadata item statuses.
const (
	MetadataItemStatusActive   MetadataItemStatus = "ACTIVE"
	MetadataItemStatusArchived MetadataItemStatus = "ARCHIVED"
)

// MetadataItem is a metadata item document.
type MetadataItem struct {
	PK              string             `json:"pk,omitempty"`
	ID              uuid.UUID          `json:"id"`
	Parent          *uuid.UUID         `json:"parent"`
	ParentPath      *string            `json:"parent_path"`
	Type            string             `json:"type"`
	Zone            int                `json:"zone"`
	Name            string             `json:"name"`
	Size            int64              `json:"size"`
	Owner           string             `json:"owner"`
	ContainerCode   string             `json:"container_code"`
	ContainerType   ContainerType      `json:"container_type"`
	CreatedTime     Timestamp          `json:"created_time"`
	LastUpdatedTime Timestamp          `json:"last_updated_time"`
	Tags            []string           `json:"tags"`
	TemplateID      *uuid.UUID         `json:"template_id"`
	TemplateName    *string            `json:"template_name"`
	Attributes      map[string]any     `json:"attributes"`
	Status          MetadataItemStatus `json:"status"`
}

// SizeUsageDataset is one per-zone series of a size usage response.
type SizeUsageDataset struct {
	Label  int     `json:"label"`
	Values []int64 `json:"values"`
}

// SizeUsage is the aggregated project storage usage over time.
type SizeUsage struct {
	Labels   []string           `json:"labels"`
	Datasets []SizeUsageDataset `json:"datasets"`
}

// SizeStatistics is the aggregated project files count and size.
type SizeStatistics struct {
	Count int64 `json:"count"`
	Size  int64 `json:"size"`
}

// MetadataItemFilter holds the optional filter criteria for metadata items.
// Only criteria that are set contribute clauses to the query.
type MetadataItemFilter struct {
	Name             *string
	Owner            *string
	ParentPath       *string
	Zone             *int
	ContainerCode    *string
	ContainerType    *ContainerType
	CreatedTimeStart *time.Time
	CreatedTimeEnd   *time.Time
	SizeGte          *int64
	SizeLte          *int64
	TemplateID       *uuid.UUID
	Attributes       map[string]any
	IsArchived       *bool
	TagsAll          *string
	Type             *string
}

// HasCriteria reports whether at least one filter criterion is set.
func (f *MetadataItemFilter) HasCriteria() bool {
	return f.Name != nil || f.Owner != nil || f.ParentPath != nil || f.Zone != nil ||
		f.ContainerCode != nil || f.ContainerType != nil ||
		f.CreatedTimeStart != nil || f.CreatedTimeEnd != nil ||
		f.SizeGte != nil || f.SizeLte != nil || f.TemplateID != nil ||
		f.Attributes != nil || f.IsArchived != nil || f.TagsAll != nil || f.Type != nil
}

// Apply adds the filter criteria into the search query.
func (f *MetadataItemFilter) Apply(q *elasticsearch.SearchQuery) {
	if f.Name != nil && *f.Name != "" {
		q.MatchText("name.keyword", *f.Name)
	}

	if f.Owner != nil && *f.Owner != "" {
		q.MatchText("owner.keyword", *f.Owner)
	}

	if f.ParentPath != nil && *f.ParentPath != "" {
		q.MatchText("parent_path.keyword", *f.ParentPath)
	}

	if f.Zone != nil {
		q.MatchTerm("zone", *f.Zone)
	}

	if f.ContainerCode != nil && *f.ContainerCode != "" {
		q.MatchTerm("container_code", *f.ContainerCode)
	}

	if f.ContainerType != nil && *f.ContainerType != "" {
		q.MatchTerm("container_type", string(*f.ContainerType))
	}

	if f.CreatedTimeStart != nil {
		q.MatchRange("created_time", map[string]any{"gte": f.CreatedTimeStart.Unix()})
	}

	if f.CreatedTimeEnd != nil {
		q.MatchRange("created_time", map[string]any{"lte": f.CreatedTimeEnd.Unix()})
	}

	if f.SizeGte != nil && *f.SizeGte != 0 {
		q.MatchRange("size", map[string]any{"gte": *f.SizeGte})
	}

	if f.SizeLte != nil && *f.SizeLte != 0 {
		q.MatchRange("size", map[string]any{"lte": *f.SizeLte})
	}

	if f.TemplateID != nil {
		q.MatchTerm("template_id", f.TemplateID.String())
	}

	if len(f.Attributes) > 0 {
		q.InitNested("attributes")
		for key, value := range f.Attributes {
			switch v := value.(type) {
			case string:
				q.MatchNestedContains("attributes", key, v)
			case []any:
				q.MatchNestedExact("attributes", key, v)
			}
		}
	}

	if f.IsArchived != nil {
		status := MetadataItemStatusActive
		if *f.IsArchived {
			status = MetadataItemStatusArchived
		}
		q.MatchTerm("status.keyword", string(status))
	}

	if f.TagsAll != nil && *f.TagsAll != "" {
		q.MatchMultipleTerms("tags", splitCSV(*f.TagsAll))
	}

	if f.Type != nil && *f.Type != "" {
		q.MatchMultipleTerms("type", splitCSV(*f.Type))
	}
}

// ProjectSizeUsageFilter holds the fixed criteria for project size usage.
type ProjectSizeUsageFilter struct {
	ProjectCode string
	ParentPath  *string
	FromDate    time.Time
	ToDate      time.Time
}

// Apply adds the filter criteria into the search query.
func (f *ProjectSizeUsageFilter) Apply(q *elasticsearch.SearchQuery) {
	q.MatchTerm("type", string(MetadataItemTypeFile))
	q.MatchTerm("container_type", string(ContainerTypeProject))
	q.MatchTerm("container_code", f.ProjectCode)
	q.MatchRange("created_time", map[string]any{
		"gte": f.FromDate.Unix(),
		"lt":  f.ToDate.Unix(),
	})
	q.MatchTerm("status.keyword", string(MetadataItemStatusActive))
	if f.ParentPath != nil {
		q.MatchText("parent_path.keyword", *f.ParentPath)
	}
}

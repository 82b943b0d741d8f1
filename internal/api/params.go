package api

import (
	"encoding/json"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dataplatform-hub/search/internal/domain"
)

var timeZoneRegexp = regexp.MustCompile(`^[-+][0-9]{2}:[0-9]{2}$`)

// parseTimeValue accepts epoch seconds or an RFC 3339 datetime.
func parseTimeValue(value string) (time.Time, error) {
	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(seconds, 0).UTC(), nil
	}

	return time.Parse(time.RFC3339, value)
}

type pageParams struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1"`
}

func (p *pageParams) Pagination() domain.Pagination {
	return domain.NewPagination(p.Page, p.PageSize)
}

// metadataItemListParams are the query parameters of the metadata items
// listing.
type metadataItemListParams struct {
	pageParams

	SortBy    string `form:"sort_by" binding:"omitempty,oneof=size created_time last_updated_time"`
	SortOrder string `form:"sort_order,default=asc" binding:"omitempty,oneof=asc desc"`

	Name             *string `form:"name"`
	Owner            *string `form:"owner"`
	ParentPath       *string `form:"parent_path"`
	Zone             *int    `form:"zone"`
	ContainerCode    *string `form:"container_code"`
	ContainerType    string  `form:"container_type" binding:"omitempty,oneof=project dataset"`
	CreatedTimeStart string  `form:"created_time_start"`
	CreatedTimeEnd   string  `form:"created_time_end"`
	SizeGte          *int64  `form:"size_gte" binding:"omitempty,min=1"`
	SizeLte          *int64  `form:"size_lte" binding:"omitempty,min=1"`
	TemplateID       string  `form:"template_id"`
	Attributes       string  `form:"attributes"`
	IsArchived       *bool   `form:"is_archived"`
	TagsAll          *string `form:"tags_all"`
	Type             *string `form:"type"`
}

func (p *metadataItemListParams) Sorting() *domain.Sorting {
	return &domain.Sorting{Field: p.SortBy, Order: domain.SortOrder(p.SortOrder)}
}

// Filter converts the raw parameters into the typed filter. The second
// return value carries the field-level problem when conversion fails.
func (p *metadataItemListParams) Filter() (*domain.MetadataItemFilter, *ValidationErrorSchema) {
	filter := &domain.MetadataItemFilter{
		Name:          p.Name,
		Owner:         p.Owner,
		ParentPath:    p.ParentPath,
		Zone:          p.Zone,
		ContainerCode: p.ContainerCode,
		SizeGte:       p.SizeGte,
		SizeLte:       p.SizeLte,
		IsArchived:    p.IsArchived,
		TagsAll:       p.TagsAll,
		Type:          p.Type,
	}

	if p.ContainerType != "" {
		containerType := domain.ContainerType(p.ContainerType)
		filter.ContainerType = &containerType
	}

	if p.CreatedTimeStart != "" {
		start, err := parseTimeValue(p.CreatedTimeStart)
		if err != nil {
			problem := newValidationError("created_time_start", "invalid datetime format")
			return nil, &problem
		}
		filter.CreatedTimeStart = &start
	}

	if p.CreatedTimeEnd != "" {
		end, err := parseTimeValue(p.CreatedTimeEnd)
		if err != nil {
			problem := newValidationError("created_time_end", "invalid datetime format")
			return nil, &problem
		}
		filter.CreatedTimeEnd = &end
	}

	if p.TemplateID != "" {
		templateID, err := uuid.Parse(p.TemplateID)
		if err != nil {
			problem := newValidationError("template_id", "invalid UUID")
			return nil, &problem
		}
		filter.TemplateID = &templateID
	}

	if p.Attributes != "" {
		var attributes map[string]any
		if err := json.Unmarshal([]byte(p.Attributes), &attributes); err != nil {
			problem := newValidationError("attributes", "Must be valid JSON")
			return nil, &problem
		}
		filter.Attributes = attributes
	}

	return filter, nil
}

// itemActivityListParams are the query parameters of the item activity
// logs listing.
type itemActivityListParams struct {
	pageParams

	SortBy    string `form:"sort_by" binding:"omitempty,oneof=activity_time"`
	SortOrder string `form:"sort_order,default=asc" binding:"omitempty,oneof=asc desc"`

	ActivityType      *string `form:"activity_type"`
	ActivityTimeStart string  `form:"activity_time_start"`
	ActivityTimeEnd   string  `form:"activity_time_end"`
	ContainerCode     *string `form:"container_code"`
	User              *string `form:"user"`
	Zone              *int    `form:"zone"`
}

func (p *itemActivityListParams) Sorting() *domain.Sorting {
	return &domain.Sorting{Field: p.SortBy, Order: domain.SortOrder(p.SortOrder)}
}

func (p *itemActivityListParams) Filter() (*domain.ItemActivityFilter, *ValidationErrorSchema) {
	filter := &domain.ItemActivityFilter{
		ActivityType:  p.ActivityType,
		ContainerCode: p.ContainerCode,
		User:          p.User,
		Zone:          p.Zone,
	}

	if p.ActivityTimeStart != "" {
		start, err := parseTimeValue(p.ActivityTimeStart)
		if err != nil {
			problem := newValidationError("activity_time_start", "invalid datetime format")
			return nil, &problem
		}
		filter.ActivityTimeStart = &start
	}

	if p.ActivityTimeEnd != "" {
		end, err := parseTimeValue(p.ActivityTimeEnd)
		if err != nil {
			problem := newValidationError("activity_time_end", "invalid datetime format")
			return nil, &problem
		}
		filter.ActivityTimeEnd = &end
	}

	return filter, nil
}

// datasetActivityListParams are the query parameters of the combined
// dataset and item activity logs listing.
type datasetActivityListParams struct {
	pageParams

	SortBy    string `form:"sort_by" binding:"omitempty,oneof=activity_time"`
	SortOrder string `form:"sort_order,default=asc" binding:"omitempty,oneof=asc desc"`

	ActivityType      *string `form:"activity_type"`
	ActivityTimeStart string  `form:"activity_time_start"`
	ActivityTimeEnd   string  `form:"activity_time_end"`
	ContainerCode     *string `form:"container_code"`
	Version           *string `form:"version"`
	TargetName        *string `form:"target_name"`
	User              *string `form:"user"`
	ContainerType     string  `form:"container_type" binding:"omitempty,oneof=project dataset"`
	ItemID            string  `form:"item_id"`
	ItemType          *string `form:"item_type"`
	ItemName          *string `form:"item_name"`
	ItemParentPath    *string `form:"item_parent_path"`
	Zone              *int    `form:"zone"`
	ImportedFrom      *string `form:"imported_from"`
}

func (p *datasetActivityListParams) Sorting() *domain.Sorting {
	return &domain.Sorting{Field: p.SortBy, Order: domain.SortOrder(p.SortOrder)}
}

func (p *datasetActivityListParams) Filter() (*domain.DatasetAndItemActivityFilter, *ValidationErrorSchema) {
	filter := &domain.DatasetAndItemActivityFilter{
		ActivityType:   p.ActivityType,
		ContainerCode:  p.ContainerCode,
		Version:        p.Version,
		TargetName:     p.TargetName,
		User:           p.User,
		ItemType:       p.ItemType,
		ItemName:       p.ItemName,
		ItemParentPath: p.ItemParentPath,
		Zone:           p.Zone,
		ImportedFrom:   p.ImportedFrom,
	}

	if p.ContainerType != "" {
		containerType := domain.ContainerType(p.ContainerType)
		filter.ContainerType = &containerType
	}

	if p.ActivityTimeStart != "" {
		start, err := parseTimeValue(p.ActivityTimeStart)
		if err != nil {
			problem := newValidationError("activity_time_start", "invalid datetime format")
			return nil, &problem
		}
		filter.ActivityTimeStart = &start
	}

	if p.ActivityTimeEnd != "" {
		end, err := parseTimeValue(p.ActivityTimeEnd)
		if err != nil {
			problem := newValidationError("activity_time_end", "invalid datetime format")
			return nil, &problem
		}
		filter.ActivityTimeEnd = &end
	}

	if p.ItemID != "" {
		itemID, err := uuid.Parse(p.ItemID)
		if err != nil {
			problem := newValidationError("item_id", "invalid UUID")
			return nil, &problem
		}
		filter.ItemID = &itemID
	}

	return filter, nil
}

// projectTimeRangeParams are the shared from/to/time_zone parameters of
// the project files endpoints.
type projectTimeRangeParams struct {
	From     string `form:"from" binding:"required"`
	To       string `form:"to" binding:"required"`
	TimeZone string `form:"time_zone,default=+00:00"`
}

// Range parses the from/to values and checks the time zone offset format.
func (p *projectTimeRangeParams) Range() (from, to time.Time, problem *ValidationErrorSchema) {
	if !timeZoneRegexp.MatchString(p.TimeZone) {
		invalid := newValidationError("time_zone", "must match [+-]HH:MM")
		return from, to, &invalid
	}

	from, err := parseTimeValue(p.From)
	if err != nil {
		invalid := newValidationError("from", "invalid datetime format")
		return from, to, &invalid
	}

	to, err = parseTimeValue(p.To)
	if err != nil {
		invalid := newValidationError("to", "invalid datetime format")
		return from, to, &invalid
	}

	return from, to, nil
}

// projectSizeParams are the query parameters of the project size usage
// endpoint.
type projectSizeParams struct {
	projectTimeRangeParams

	GroupBy    string  `form:"group_by,default=month" binding:"omitempty,oneof=month"`
	ParentPath *string `form:"parent_path"`
}

// projectStatisticsParams are the query parameters of the project
// statistics endpoint.
type projectStatisticsParams struct {
	ParentPath *string `form:"parent_path"`
	Zone       *int    `form:"zone"`
	TimeZone   string  `form:"time_zone,default=+00:00"`
}

// projectActivityParams are the query parameters of the project file
// activity endpoint.
type projectActivityParams struct {
	projectTimeRangeParams

	GroupBy      string  `form:"group_by,default=day" binding:"omitempty,oneof=day"`
	ActivityType string  `form:"type,default=download" binding:"omitempty,oneof=download upload delete copy import create approve update"`
	User         *string `form:"user"`
}

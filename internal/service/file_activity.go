package service

import (
	"encoding/json"
	"time"

	"github.com/dataplatform-hub/search/internal/domain"
)

// FileActivityHandler defines the daily file activity aggregation and
// flattens the bucketed response into a day keyed count map.
//
// Only grouping by day is supported at the moment, so it's hardcoded.
type FileActivityHandler struct {
	FromDate time.Time
	ToDate   time.Time
	TimeZone string
	GroupBy  domain.ActivityGroupBy
}

const (
	fileActivityESFormat     = "yyyy-MM-dd"
	fileActivityManualFormat = "2006-01-02"
)

// GroupingKeys returns the ordered day keys covering [FromDate, ToDate).
func (h *FileActivityHandler) GroupingKeys() []string {
	keys := make([]string, 0)
	for cursor := h.FromDate; cursor.Before(h.ToDate); cursor = cursor.AddDate(0, 0, 1) {
		keys = append(keys, cursor.Format(fileActivityManualFormat))
	}

	return keys
}

// Aggregations returns a keyed daily histogram on activity_time.
func (h *FileActivityHandler) Aggregations() map[string]any {
	return map[string]any{
		"group_by_activity_time": map[string]any{
			"date_histogram": map[string]any{
				"field":             "activity_time",
				"calendar_interval": string(domain.ActivityGroupByDay),
				"min_doc_count":     0,
				"time_zone":         h.TimeZone,
				"format":            fileActivityESFormat,
				"keyed":             true,
			},
		},
	}
}

type fileActivityAggResponse struct {
	Aggregations struct {
		GroupByActivityTime struct {
			Buckets map[string]struct {
				DocCount int64 `json:"doc_count"`
			} `json:"buckets"`
		} `json:"group_by_activity_time"`
	} `json:"aggregations"`
}

// ProcessSearchResult flattens the histogram into a map with one entry
// per day key in range, zero when the store reported no bucket.
func (h *FileActivityHandler) ProcessSearchResult(raw json.RawMessage) (map[string]int64, error) {
	var esResp fileActivityAggResponse
	if err := json.Unmarshal(raw, &esResp); err != nil {
		return nil, err
	}

	buckets := esResp.Aggregations.GroupByActivityTime.Buckets
	result := make(map[string]int64)
	for _, key := range h.GroupingKeys() {
		result[key] = buckets[key].DocCount
	}

	return result, nil
}

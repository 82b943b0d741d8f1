package service

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/dataplatform-hub/search/internal/domain"
)

// SizeUsageHandler defines the size usage aggregation and reshapes the
// bucketed response into per-zone datasets.
//
// Only grouping by month is supported at the moment, so it's hardcoded.
type SizeUsageHandler struct {
	FromDate time.Time
	ToDate   time.Time
	TimeZone string
	GroupBy  domain.SizeGroupBy
}

const (
	sizeUsageESFormat     = "yyyy-MM"
	sizeUsageManualFormat = "2006-01"
)

// GroupingKeys returns the ordered month keys covering [FromDate, ToDate).
// A month is included if its last day, at FromDate's clock time, falls
// before ToDate.
func (h *SizeUsageHandler) GroupingKeys() []string {
	until := h.ToDate.Add(-time.Second)

	seen := make(map[string]struct{})
	cursor := time.Date(
		h.FromDate.Year(), h.FromDate.Month(), 1,
		h.FromDate.Hour(), h.FromDate.Minute(), h.FromDate.Second(), 0,
		h.FromDate.Location(),
	)
	for {
		// Last day of cursor's month at FromDate's clock time.
		anchor := cursor.AddDate(0, 1, 0).AddDate(0, 0, -1)
		if anchor.After(until) {
			break
		}
		if !anchor.Before(h.FromDate) {
			seen[anchor.Format(sizeUsageManualFormat)] = struct{}{}
		}
		cursor = cursor.AddDate(0, 1, 0)
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// Aggregations returns the aggregation request: terms on zone, then a
// keyed calendar-month histogram on created_time summing size per bucket.
func (h *SizeUsageHandler) Aggregations() map[string]any {
	return map[string]any{
		"group_by_zone": map[string]any{
			"terms": map[string]any{"field": "zone"},
			"aggs": map[string]any{
				"group_by_created_time": map[string]any{
					"date_histogram": map[string]any{
						"field":             "created_time",
						"calendar_interval": string(domain.SizeGroupByMonth),
						"min_doc_count":     0,
						"time_zone":         h.TimeZone,
						"format":            sizeUsageESFormat,
						"keyed":             true,
					},
					"aggs": map[string]any{
						"total_size": map[string]any{"sum": map[string]any{"field": "size"}},
					},
				},
			},
		},
	}
}

// sizeUsageAggResponse is the typed ES response for the size usage aggregation.
type sizeUsageAggResponse struct {
	Aggregations struct {
		GroupByZone struct {
			Buckets []struct {
				Key                int `json:"key"`
				GroupByCreatedTime struct {
					Buckets map[string]struct {
						TotalSize struct {
							Value float64 `json:"value"`
						} `json:"total_size"`
					} `json:"buckets"`
				} `json:"group_by_created_time"`
			} `json:"buckets"`
		} `json:"group_by_zone"`
	} `json:"aggregations"`
}

// ProcessSearchResult reshapes the aggregation response into one dataset
// per zone. Every dataset has one value per month key in range, zero when
// the store reported no data for that zone and month.
func (h *SizeUsageHandler) ProcessSearchResult(raw json.RawMessage) (*domain.SizeUsage, error) {
	var esResp sizeUsageAggResponse
	if err := json.Unmarshal(raw, &esResp); err != nil {
		return nil, err
	}

	keys := h.GroupingKeys()
	zoneBuckets := esResp.Aggregations.GroupByZone.Buckets

	if len(zoneBuckets) == 0 {
		return &domain.SizeUsage{Labels: keys, Datasets: []domain.SizeUsageDataset{}}, nil
	}

	sums := make(map[int]map[string]int64, len(zoneBuckets))
	for _, zone := range zoneBuckets {
		perKey := make(map[string]int64, len(keys))
		for dateKey, bucket := range zone.GroupByCreatedTime.Buckets {
			perKey[dateKey] = int64(bucket.TotalSize.Value)
		}
		sums[zone.Key] = perKey
	}

	zones := make([]int, 0, len(sums))
	for zone := range sums {
		zones = append(zones, zone)
	}
	sort.Ints(zones)

	datasets := make([]domain.SizeUsageDataset, 0, len(zones))
	for _, zone := range zones {
		values := make([]int64, len(keys))
		for i, key := range keys {
			values[i] = sums[zone][key]
		}
		datasets = append(datasets, domain.SizeUsageDataset{Label: zone, Values: values})
	}

	return &domain.SizeUsage{Labels: keys, Datasets: datasets}, nil
}

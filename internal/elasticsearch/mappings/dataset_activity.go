package mappings

// GetDatasetActivityMapping returns the field mapping for the dataset activity logs index.
func GetDatasetActivityMapping() map[string]any {
	return map[string]any{
		"properties": map[string]any{
			"activity_time": map[string]any{"type": "date", "format": "epoch_second"},
			"activity_type": map[string]any{"type": "keyword"},
			"changes": map[string]any{
				"type": "nested",
				"properties": map[string]any{
					"property":  map[string]any{"type": "keyword"},
					"new_value": map[string]any{"type": "keyword"},
					"old_value": map[string]any{"type": "keyword"},
				},
			},
			"container_code": map[string]any{"type": "keyword"},
			"target_name":    map[string]any{"type": "keyword"},
			"user": map[string]any{
				"type":   "text",
				"fields": map[string]any{"keyword": map[string]any{"type": "keyword"}},
			},
			"version": map[string]any{"type": "keyword"},
		},
	}
}

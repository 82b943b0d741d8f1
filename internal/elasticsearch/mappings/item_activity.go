package mappings

// GetItemActivityMapping returns the field mapping for the item activity logs index.
func GetItemActivityMapping() map[string]any {
	return map[string]any{
		"properties": map[string]any{
			"activity_time": map[string]any{"type": "date", "format": "epoch_second"},
			"activity_type": map[string]any{"type": "keyword"},
			"changes": map[string]any{
				"type": "nested",
				"properties": map[string]any{
					"item_property": map[string]any{"type": "keyword"},
					"new_value":     map[string]any{"type": "keyword"},
					"old_value":     map[string]any{"type": "keyword"},
				},
			},
			"container_code": map[string]any{"type": "keyword"},
			"container_type": map[string]any{"type": "keyword"},
			"imported_from":  map[string]any{"type": "keyword"},
			"item_id":        map[string]any{"type": "keyword"},
			"item_name": map[string]any{
				"type":   "text",
				"fields": map[string]any{"keyword": map[string]any{"type": "keyword"}},
			},
			"item_parent_path": map[string]any{
				"type":     "text",
				"fields":   map[string]any{"keyword": map[string]any{"type": "keyword"}},
				"analyzer": "path_analyzer",
			},
			"item_type": map[string]any{"type": "keyword"},
			"user": map[string]any{
				"type":   "text",
				"fields": map[string]any{"keyword": map[string]any{"type": "keyword"}},
			},
			"zone": map[string]any{"type": "byte"},
		},
	}
}

package mappings

// GetMetadataItemMapping returns the field mapping for the metadata items index.
func GetMetadataItemMapping() map[string]any {
	return map[string]any{
		"properties": map[string]any{
			"status": map[string]any{
				"type":   "text",
				"fields": map[string]any{"keyword": map[string]any{"type": "keyword"}},
			},
			"attributes": map[string]any{
				"type": "nested",
				"properties": map[string]any{
					"name":  map[string]any{"type": "keyword"},
					"value": map[string]any{"type": "keyword"},
				},
			},
			"container_code": map[string]any{"type": "keyword"},
			"container_type": map[string]any{"type": "keyword"},
			"created_time":   map[string]any{"type": "date", "format": "epoch_second"},
			"extended_id":    map[string]any{"type": "keyword"},
			"id":             map[string]any{"type": "keyword"},
			"last_updated_time": map[string]any{
				"type":   "date",
				"format": "epoch_second",
			},
			"location_uri": map[string]any{"type": "keyword"},
			"name": map[string]any{
				"type":   "text",
				"fields": map[string]any{"keyword": map[string]any{"type": "keyword"}},
			},
			"owner": map[string]any{
				"type":   "text",
				"fields": map[string]any{"keyword": map[string]any{"type": "keyword"}},
			},
			"parent": map[string]any{"type": "keyword"},
			"parent_path": map[string]any{
				"type":     "text",
				"fields":   map[string]any{"keyword": map[string]any{"type": "keyword"}},
				"analyzer": "path_analyzer",
			},
			"restore_path": map[string]any{
				"type":     "text",
				"fields":   map[string]any{"keyword": map[string]any{"type": "keyword"}},
				"analyzer": "path_analyzer",
			},
			"size":          map[string]any{"type": "long"},
			"storage_id":    map[string]any{"type": "keyword"},
			"system_tags":   map[string]any{"type": "keyword"},
			"tags":          map[string]any{"type": "keyword"},
			"template_id":   map[string]any{"type": "keyword"},
			"template_name": map[string]any{"type": "keyword"},
			"type":          map[string]any{"type": "keyword"},
			"version":       map[string]any{"type": "keyword"},
			"zone":          map[string]any{"type": "byte"},
		},
	}
}

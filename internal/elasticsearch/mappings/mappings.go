// Package mappings defines the index settings and field mappings for every
// index the service owns.
package mappings

// GetIndexSettings returns the shared index settings. The path_tokenizer
// splits hierarchical paths on "." so parent_path fields support prefix
// matching. When shards is positive, explicit shard and replica counts are
// included.
func GetIndexSettings(shards, replicas int) map[string]any {
	settings := map[string]any{
		"analysis": map[string]any{
			"analyzer": map[string]any{
				"path_analyzer": map[string]any{"tokenizer": "path_tokenizer"},
			},
			"tokenizer": map[string]any{
				"path_tokenizer": map[string]any{"type": "path_hierarchy", "delimiter": "."},
			},
		},
	}
	if shards > 0 {
		settings["number_of_shards"] = shards
		settings["number_of_replicas"] = replicas
	}

	return settings
}

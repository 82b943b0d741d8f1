package domain //nolint:testpackage // exercising filter internals

import (
	"reflect"
	"testing"

	"github.com/dataplatform-hub/search/internal/elasticsearch"
)

func TestDatasetAndItemActivityFilter_TextFieldsUseFullTextMatch(t *testing.T) {
	// version, target_name, user, item_name and item_parent_path search the
	// analyzed field, not a keyword subfield.
	f := &DatasetAndItemActivityFilter{
		Version:  ptr("1.0"),
		User:     ptr("admin"),
		ItemName: ptr("data.csv"),
	}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	want := []map[string]any{
		{"match": map[string]any{"version": "1.0"}},
		{"match": map[string]any{"user": "admin"}},
		{"match": map[string]any{"item_name": "data.csv"}},
	}
	if got := mustClauses(t, q); !reflect.DeepEqual(got, want) {
		t.Errorf("clauses = %v, want %v", got, want)
	}
}

func TestDatasetAndItemActivityFilter_WildcardOnPercent(t *testing.T) {
	f := &DatasetAndItemActivityFilter{ItemName: ptr("%data%")}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	want := []map[string]any{
		{
			"wildcard": map[string]any{
				"item_name": map[string]any{
					"value":            "*data*",
					"case_insensitive": true,
				},
			},
		},
	}
	if got := mustClauses(t, q); !reflect.DeepEqual(got, want) {
		t.Errorf("clauses = %v, want %v", got, want)
	}
}

func TestDatasetAndItemActivityFilter_ZoneZeroIsSkipped(t *testing.T) {
	f := &DatasetAndItemActivityFilter{Zone: ptr(0)}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	want := map[string]any{"match_all": map[string]any{}}
	if got := q.Build(); !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestDatasetAndItemActivityFilter_HasCriteria(t *testing.T) {
	empty := &DatasetAndItemActivityFilter{}
	if empty.HasCriteria() {
		t.Error("HasCriteria() = true for empty filter")
	}

	set := &DatasetAndItemActivityFilter{TargetName: ptr("schema")}
	if !set.HasCriteria() {
		t.Error("HasCriteria() = false for filter with target_name")
	}
}

package domain //nolint:testpackage // exercising filter internals

import (
	"reflect"
	"testing"
	"time"

	"github.com/dataplatform-hub/search/internal/elasticsearch"
)

func ptr[T any](v T) *T {
	return &v
}

func mustClauses(t *testing.T, q *elasticsearch.SearchQuery) []map[string]any {
	t.Helper()

	built := q.Build()
	boolQuery, ok := built["bool"].(map[string]any)
	if !ok {
		t.Fatalf("expected bool query, got %v", built)
	}
	return boolQuery["must"].([]map[string]any)
}

func TestMetadataItemFilter_ZoneZeroIsApplied(t *testing.T) {
	f := &MetadataItemFilter{Zone: ptr(0)}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	want := []map[string]any{
		{"term": map[string]any{"zone": 0}},
	}
	if got := mustClauses(t, q); !reflect.DeepEqual(got, want) {
		t.Errorf("clauses = %v, want %v", got, want)
	}
}

func TestMetadataItemFilter_ZeroSizeBoundsAreSkipped(t *testing.T) {
	f := &MetadataItemFilter{
		SizeGte:       ptr(int64(0)),
		SizeLte:       ptr(int64(0)),
		ContainerCode: ptr("testproject"),
	}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	want := []map[string]any{
		{"term": map[string]any{"container_code": "testproject"}},
	}
	if got := mustClauses(t, q); !reflect.DeepEqual(got, want) {
		t.Errorf("clauses = %v, want %v", got, want)
	}
}

func TestMetadataItemFilter_CreatedTimeRange(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)
	f := &MetadataItemFilter{CreatedTimeStart: &start, CreatedTimeEnd: &end}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	want := []map[string]any{
		{"range": map[string]any{"created_time": map[string]any{"gte": start.Unix()}}},
		{"range": map[string]any{"created_time": map[string]any{"lte": end.Unix()}}},
	}
	if got := mustClauses(t, q); !reflect.DeepEqual(got, want) {
		t.Errorf("clauses = %v, want %v", got, want)
	}
}

func TestMetadataItemFilter_IsArchivedMapsToStatusTerm(t *testing.T) {
	tests := []struct {
		name       string
		isArchived bool
		wantStatus string
	}{
		{"active", false, "ACTIVE"},
		{"archived", true, "ARCHIVED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &MetadataItemFilter{IsArchived: ptr(tt.isArchived)}

			q := elasticsearch.NewSearchQuery()
			f.Apply(q)

			want := []map[string]any{
				{"term": map[string]any{"status.keyword": tt.wantStatus}},
			}
			if got := mustClauses(t, q); !reflect.DeepEqual(got, want) {
				t.Errorf("clauses = %v, want %v", got, want)
			}
		})
	}
}

func TestMetadataItemFilter_CSVFieldsSplitIntoTerms(t *testing.T) {
	f := &MetadataItemFilter{
		TagsAll: ptr("red,blue"),
		Type:    ptr("file,folder"),
	}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	want := []map[string]any{
		{"terms": map[string]any{"tags": []string{"red", "blue"}}},
		{"terms": map[string]any{"type": []string{"file", "folder"}}},
	}
	if got := mustClauses(t, q); !reflect.DeepEqual(got, want) {
		t.Errorf("clauses = %v, want %v", got, want)
	}
}

func TestMetadataItemFilter_AttributesOnlyFallsBackToMatchAll(t *testing.T) {
	// A nested attributes clause without any top-level criteria does not
	// survive the build and the query matches everything.
	f := &MetadataItemFilter{Attributes: map[string]any{"name": "weight"}}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	want := map[string]any{"match_all": map[string]any{}}
	if got := q.Build(); !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestMetadataItemFilter_AttributesNestedClause(t *testing.T) {
	f := &MetadataItemFilter{
		ContainerCode: ptr("testproject"),
		Attributes:    map[string]any{"unit": []any{"kg", "lb"}},
	}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	clauses := mustClauses(t, q)
	if len(clauses) != 2 {
		t.Fatalf("clauses = %d, want 2", len(clauses))
	}

	nested, ok := clauses[1]["nested"].(map[string]any)
	if !ok {
		t.Fatalf("last clause is not nested: %v", clauses[1])
	}
	if nested["path"] != "attributes" {
		t.Errorf("nested path = %v, want attributes", nested["path"])
	}

	boolQuery := nested["query"].(map[string]any)["bool"].(map[string]any)
	should := boolQuery["should"].([]map[string]any)
	if len(should) != 2 {
		t.Errorf("should clauses = %d, want 2", len(should))
	}
	if boolQuery["minimum_should_match"] != 1 {
		t.Errorf("minimum_should_match = %v, want 1", boolQuery["minimum_should_match"])
	}
}

func TestProjectSizeUsageFilter_FixedClauses(t *testing.T) {
	from := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)
	f := &ProjectSizeUsageFilter{
		ProjectCode: "testproject",
		FromDate:    from,
		ToDate:      to,
	}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	want := []map[string]any{
		{"term": map[string]any{"type": "file"}},
		{"term": map[string]any{"container_type": "project"}},
		{"term": map[string]any{"container_code": "testproject"}},
		{"range": map[string]any{"created_time": map[string]any{"gte": from.Unix(), "lt": to.Unix()}}},
		{"term": map[string]any{"status.keyword": "ACTIVE"}},
	}
	if got := mustClauses(t, q); !reflect.DeepEqual(got, want) {
		t.Errorf("clauses = %v, want %v", got, want)
	}
}

func TestProjectSizeUsageFilter_ParentPathAppliedWhenSet(t *testing.T) {
	f := &ProjectSizeUsageFilter{
		ProjectCode: "testproject",
		ParentPath:  ptr("admin"),
		FromDate:    time.Unix(0, 0),
		ToDate:      time.Unix(100, 0),
	}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	clauses := mustClauses(t, q)
	last := clauses[len(clauses)-1]
	want := map[string]any{"match": map[string]any{"parent_path.keyword": "admin"}}
	if !reflect.DeepEqual(last, want) {
		t.Errorf("last clause = %v, want %v", last, want)
	}
}

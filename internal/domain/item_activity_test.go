package domain //nolint:testpackage // exercising filter internals

import (
	"reflect"
	"testing"
	"time"

	"github.com/dataplatform-hub/search/internal/elasticsearch"
)

func TestItemActivityFilter_AlwaysScopedToProjects(t *testing.T) {
	f := &ItemActivityFilter{}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	want := []map[string]any{
		{"term": map[string]any{"container_type": "project"}},
	}
	if got := mustClauses(t, q); !reflect.DeepEqual(got, want) {
		t.Errorf("clauses = %v, want %v", got, want)
	}
}

func TestItemActivityFilter_ZoneZeroIsSkipped(t *testing.T) {
	f := &ItemActivityFilter{Zone: ptr(0), User: ptr("admin")}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	want := []map[string]any{
		{"term": map[string]any{"container_type": "project"}},
		{"term": map[string]any{"user": "admin"}},
	}
	if got := mustClauses(t, q); !reflect.DeepEqual(got, want) {
		t.Errorf("clauses = %v, want %v", got, want)
	}
}

func TestItemActivityFilter_TimeBoundsUseEpochSeconds(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC)
	f := &ItemActivityFilter{ActivityTimeStart: &start, ActivityTimeEnd: &end}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	want := []map[string]any{
		{"range": map[string]any{"activity_time": map[string]any{"gte": start.Unix()}}},
		{"range": map[string]any{"activity_time": map[string]any{"lte": end.Unix()}}},
		{"term": map[string]any{"container_type": "project"}},
	}
	if got := mustClauses(t, q); !reflect.DeepEqual(got, want) {
		t.Errorf("clauses = %v, want %v", got, want)
	}
}

func TestProjectFileActivityFilter_EmptyUserStillApplied(t *testing.T) {
	// The user clause is skipped only when the parameter is absent, not
	// when it is an empty string.
	f := &ProjectFileActivityFilter{
		ProjectCode:  "testproject",
		ActivityType: ItemActivityTypeDownload,
		FromDate:     time.Unix(0, 0),
		ToDate:       time.Unix(86400, 0),
		User:         ptr(""),
	}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	clauses := mustClauses(t, q)
	last := clauses[len(clauses)-1]
	want := map[string]any{"term": map[string]any{"user": ""}}
	if !reflect.DeepEqual(last, want) {
		t.Errorf("last clause = %v, want %v", last, want)
	}
}

func TestProjectFileActivityFilter_FixedClauses(t *testing.T) {
	from := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2022, 1, 8, 0, 0, 0, 0, time.UTC)
	f := &ProjectFileActivityFilter{
		ProjectCode:  "testproject",
		ActivityType: ItemActivityTypeUpload,
		FromDate:     from,
		ToDate:       to,
	}

	q := elasticsearch.NewSearchQuery()
	f.Apply(q)

	want := []map[string]any{
		{"term": map[string]any{"container_type": "project"}},
		{"term": map[string]any{"container_code": "testproject"}},
		{"term": map[string]any{"activity_type": "upload"}},
		{"range": map[string]any{"activity_time": map[string]any{"gte": from.Unix(), "lt": to.Unix()}}},
	}
	if got := mustClauses(t, q); !reflect.DeepEqual(got, want) {
		t.Errorf("clauses = %v, want %v", got, want)
	}
}

package elasticsearch //nolint:testpackage // testing query construction internals

import (
	"reflect"
	"testing"
)

func TestBuild_EmptyQueryMatchesAll(t *testing.T) {
	q := NewSearchQuery()

	got := q.Build()

	want := map[string]any{"match_all": map[string]any{}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestMatchText_PlainValueUsesMatch(t *testing.T) {
	q := NewSearchQuery()
	q.MatchText("name", "report.pdf")

	got := q.Build()

	want := map[string]any{
		"bool": map[string]any{
			"must": []map[string]any{
				{"match": map[string]any{"name": "report.pdf"}},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestMatchText_PercentValueUsesWildcard(t *testing.T) {
	q := NewSearchQuery()
	q.MatchText("name", "%report%")

	got := q.Build()

	want := map[string]any{
		"bool": map[string]any{
			"must": []map[string]any{
				{
					"wildcard": map[string]any{
						"name": map[string]any{
							"value":            "*report*",
							"case_insensitive": true,
						},
					},
				},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestMatchRange_AddsBounds(t *testing.T) {
	q := NewSearchQuery()
	q.MatchRange("created_time", map[string]any{"gte": int64(100), "lt": int64(200)})

	got := q.Build()

	want := map[string]any{
		"bool": map[string]any{
			"must": []map[string]any{
				{"range": map[string]any{"created_time": map[string]any{"gte": int64(100), "lt": int64(200)}}},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestMatchMultipleTerms_AddsTermsClause(t *testing.T) {
	q := NewSearchQuery()
	q.MatchMultipleTerms("tags", []string{"a", "b"})

	got := q.Build()

	want := map[string]any{
		"bool": map[string]any{
			"must": []map[string]any{
				{"terms": map[string]any{"tags": []string{"a", "b"}}},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestBuild_NestedClauseAppendedLast(t *testing.T) {
	q := NewSearchQuery()
	q.MatchTerm("container_code", "testproject")
	q.InitNested("attributes")
	q.MatchNestedContains("attributes", "name", "weight")
	q.MatchNestedExact("attributes", "unit", []any{"kg", "lb"})

	got := q.Build()

	want := map[string]any{
		"bool": map[string]any{
			"must": []map[string]any{
				{"term": map[string]any{"container_code": "testproject"}},
				{
					"nested": map[string]any{
						"path": "attributes",
						"query": map[string]any{
							"bool": map[string]any{
								"must": []map[string]any{
									{"wildcard": map[string]any{"attributes.name": "*weight*"}},
								},
								"should": []map[string]any{
									{"match": map[string]any{"attributes.unit": "kg"}},
									{"match": map[string]any{"attributes.unit": "lb"}},
								},
								"minimum_should_match": 1,
							},
						},
					},
				},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestBuild_NestedWithoutMustClausesFallsBackToMatchAll(t *testing.T) {
	q := NewSearchQuery()
	q.InitNested("attributes")
	q.MatchNestedContains("attributes", "name", "weight")

	got := q.Build()

	want := map[string]any{"match_all": map[string]any{}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestBuild_IsIdempotent(t *testing.T) {
	q := NewSearchQuery()
	q.MatchTerm("zone", 1)
	q.InitNested("attributes")
	q.MatchNestedExact("attributes", "name", []any{"weight"})

	first := q.Build()
	second := q.Build()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Build() differs: %v then %v", first, second)
	}

	must := second["bool"].(map[string]any)["must"].([]map[string]any)
	if len(must) != 2 {
		t.Errorf("must clauses = %d, want 2", len(must))
	}
}

func TestInitNested_ResetsStagedState(t *testing.T) {
	q := NewSearchQuery()
	q.MatchTerm("zone", 0)
	q.InitNested("attributes")
	q.MatchNestedContains("attributes", "name", "old")
	q.InitNested("attributes")
	q.MatchNestedContains("attributes", "name", "new")

	got := q.Build()

	must := got["bool"].(map[string]any)["must"].([]map[string]any)
	nested := must[1]["nested"].(map[string]any)
	nestedMust := nested["query"].(map[string]any)["bool"].(map[string]any)["must"].([]map[string]any)

	want := []map[string]any{
		{"wildcard": map[string]any{"attributes.name": "*new*"}},
	}
	if !reflect.DeepEqual(nestedMust, want) {
		t.Errorf("nested must = %v, want %v", nestedMust, want)
	}
}

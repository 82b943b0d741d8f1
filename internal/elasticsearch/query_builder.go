package elasticsearch

import (
	"fmt"
	"strings"
)

// SearchQuery accumulates boolean "must" clauses and at most one nested
// clause, and produces the final Elasticsearch query document.
type SearchQuery struct {
	must []map[string]any

	nestedPath      string
	nestedMust      []map[string]any
	nestedShould    []map[string]any
	nestedMinShould int
}

// NewSearchQuery creates an empty search query.
func NewSearchQuery() *SearchQuery {
	return &SearchQuery{}
}

// MatchText performs full-text search using a "match" or "wildcard" query.
// A literal "%" in the value switches to a case-insensitive wildcard query
// with "%" translated to "*".
func (q *SearchQuery) MatchText(field, value string) {
	if strings.Contains(value, "%") {
		q.must = append(q.must, map[string]any{
			"wildcard": map[string]any{
				field: map[string]any{
					"value": strings.ReplaceAll(value, "%", "*"),
					// This doesn't work with German umlauts (ä != Ä). Consider trying german_normalization.
					"case_insensitive": true,
				},
			},
		})
		return
	}

	q.must = append(q.must, map[string]any{
		"match": map[string]any{field: value},
	})
}

// MatchRange adds a range clause. Bounds are any combination of
// gte/lte/gt/lt; the caller supplies at least one.
func (q *SearchQuery) MatchRange(field string, bounds map[string]any) {
	q.must = append(q.must, map[string]any{
		"range": map[string]any{field: bounds},
	})
}

// MatchTerm adds an exact-value clause (string, integer or boolean).
func (q *SearchQuery) MatchTerm(field string, value any) {
	q.must = append(q.must, map[string]any{
		"term": map[string]any{field: value},
	})
}

// MatchMultipleTerms adds an exact-match-any-of clause over a list of values.
func (q *SearchQuery) MatchMultipleTerms(field string, values []string) {
	q.must = append(q.must, map[string]any{
		"terms": map[string]any{field: values},
	})
}

// InitNested begins staging a nested clause scoped to an array-of-objects
// field. Any previously staged nested state is reset.
func (q *SearchQuery) InitNested(path string) {
	q.nestedPath = path
	q.nestedMust = nil
	q.nestedShould = nil
	q.nestedMinShould = 0
}

// MatchNestedExact adds one "should" clause per accepted value on
// path.field and sets minimum_should_match to 1, so a document matches if
// any nested object has field equal to any of the values.
func (q *SearchQuery) MatchNestedExact(path, field string, values []any) {
	for _, value := range values {
		q.nestedShould = append(q.nestedShould, map[string]any{
			"match": map[string]any{fmt.Sprintf("%s.%s", path, field): value},
		})
	}
	q.nestedMinShould = 1
}

// MatchNestedContains adds a wildcard "must" clause *value* on path.field,
// ANDed with other nested must clauses.
func (q *SearchQuery) MatchNestedContains(path, field, value string) {
	q.nestedMust = append(q.nestedMust, map[string]any{
		"wildcard": map[string]any{fmt.Sprintf("%s.%s", path, field): "*" + value + "*"},
	})
}

// Build returns the final query document. With no accumulated clauses it
// returns match_all; otherwise a bool query with all must clauses and the
// staged nested clause, if any, appended last. Build does not mutate the
// accumulated state and can be called repeatedly.
func (q *SearchQuery) Build() map[string]any {
	if len(q.must) == 0 {
		return map[string]any{"match_all": map[string]any{}}
	}

	must := make([]map[string]any, 0, len(q.must)+1)
	must = append(must, q.must...)

	if q.nestedPath != "" {
		nestedMust := q.nestedMust
		if nestedMust == nil {
			nestedMust = []map[string]any{}
		}
		nestedShould := q.nestedShould
		if nestedShould == nil {
			nestedShould = []map[string]any{}
		}
		must = append(must, map[string]any{
			"nested": map[string]any{
				"path": q.nestedPath,
				"query": map[string]any{
					"bool": map[string]any{
						"must":                 nestedMust,
						"should":               nestedShould,
						"minimum_should_match": q.nestedMinShould,
					},
				},
			},
		})
	}

	return map[string]any{"bool": map[string]any{"must": must}}
}

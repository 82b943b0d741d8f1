package domain

// SortOrder is the direction of a sort clause.
type SortOrder string

// Available sort orders.
const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// Sorting holds the sort controls for list operations. An empty field means
// no sort clause is sent and the store's natural order is used.
type Sorting struct {
	Field string
	Order SortOrder
}

// IsSet reports whether a sort field was specified.
func (s Sorting) IsSet() bool {
	return s.Field != ""
}

// Apply returns the sort parameter for the search request.
func (s Sorting) Apply() []map[string]any {
	return []map[string]any{{s.Field: string(s.Order)}}
}

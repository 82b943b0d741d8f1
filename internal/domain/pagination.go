package domain

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

// Pagination holds 1-based page controls for list operations.
type Pagination struct {
	Page     int
	PageSize int
}

// NewPagination creates a Pagination, replacing out-of-range values with
// defaults.
func NewPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// Size returns the number of entries per page.
func (p Pagination) Size() int {
	return p.PageSize
}

// From returns the zero-based offset of the first entry on the page.
func (p Pagination) From() int {
	return p.PageSize * (p.Page - 1)
}

// PageOf represents one page of a list response.
type PageOf[M any] struct {
	Pagination Pagination
	Count      int64
	Entries    []M
}

// Number returns the current page number.
func (p *PageOf[M]) Number() int {
	return p.Pagination.Page
}

// TotalPages returns the page count as ceil(count / page_size).
func (p *PageOf[M]) TotalPages() int {
	size := int64(p.Pagination.PageSize)
	return int((p.Count + size - 1) / size)
}

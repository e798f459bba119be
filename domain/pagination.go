package domain

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is an offset-style paging request. Zero values mean "use the
// defaults"; Normalize clamps everything into range.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize returns a copy with page >= 1 and limit within [1, MaxLimit].
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset is the number of rows to skip for this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the listing metadata returned next to every page of results.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalCount  int64 `json:"totalCount"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination computes the metadata for one page. totalPages is
// ceil(totalCount/limit). The request is normalized first, so a raw
// PageRequest is safe to pass.
func NewPagination(page PageRequest, totalCount int64) Pagination {
	page = page.Normalize()
	totalPages := int((totalCount + int64(page.Limit) - 1) / int64(page.Limit))
	return Pagination{
		CurrentPage: page.Page,
		TotalPages:  totalPages,
		PageSize:    page.Limit,
		TotalCount:  totalCount,
		HasNextPage: page.Page < totalPages,
		HasPrevPage: page.Page > 1,
	}
}

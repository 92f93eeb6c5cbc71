package valueobject

const (
	// DefaultPageSize is used when the caller does not ask for a size.
	DefaultPageSize = 10
	// MaxPageSize caps the number of rows returned per page.
	MaxPageSize = 100
	// MaxPage caps the page index so the offset stays within int range.
	MaxPage = 1_000_000
)

// PageRequest is a zero-based page request.
type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest returns a normalized page request.
func NewPageRequest(page, size int) PageRequest {
	if page < 0 {
		page = 0
	}
	if page > MaxPage {
		page = MaxPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PageRequest{Page: page, Size: size}
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// PageMeta describes where a page sits in the full result.
type PageMeta struct {
	PageNumber    int
	PageSize      int
	TotalElements int64
	TotalPages    int
	Last          bool
}

// NewPageMeta computes the page metadata for a request and a total row count.
func NewPageMeta(request PageRequest, total int64) PageMeta {
	totalPages := int((total + int64(request.Size) - 1) / int64(request.Size))
	return PageMeta{
		PageNumber:    request.Page,
		PageSize:      request.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          request.Page >= totalPages-1,
	}
}

// SortOrder orders results by one column.
type SortOrder struct {
	Column     string
	Descending bool
}

// DefaultExpenseSort lists the newest expenses first, then the most recently updated.
var DefaultExpenseSort = []SortOrder{
	{Column: "date", Descending: true},
	{Column: "updated_at", Descending: true},
}

package domain

// PaginationParams holds offset-based pagination parameters for list queries.
// A zero PageSize means "no paging": every item is returned.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the item offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Window returns the [start, end) bounds of the current page within total items.
// Pages past the end yield an empty window at total.
func (p PaginationParams) Window(total int) (start, end int) {
	if p.PageSize <= 0 {
		return 0, total
	}
	if p.Page > 1 && p.Page-1 > total/p.PageSize {
		return total, total
	}
	start = min(p.Offset(), total)
	if p.PageSize >= total-start {
		return start, total
	}
	return start, start + p.PageSize
}

package services

// Pagination describes the page navigation state for a list view
type Pagination struct {
	CurrentPage int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
}

// NewPagination derives the page navigation state from a total row
// count, a page size and the requested page. TotalPages is never below
// one, so an empty list reads "page 1 of 1" rather than "page 1 of 0".
func NewPagination(totalCount int64, pageSize, currentPage int) Pagination {
	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	return Pagination{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}

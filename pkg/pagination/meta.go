package pagination

// Meta summarizes a page within a result set for rendering controls
type Meta struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	PageSize    int  `json:"pageSize"`
	TotalCount  int  `json:"totalCount"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// Calculate derives Meta from a total count. currentPage is reported as given,
// even when it lies past the last page.
func Calculate(totalCount, currentPage, pageSize int) Meta {
	totalPages := TotalPages(totalCount, pageSize)

	return Meta{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		HasNextPage: currentPage < totalPages,
		HasPrevPage: currentPage > 1,
	}
}

// TotalPages is ceil(totalCount/pageSize), or 0 when there is nothing to page
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize < 1 {
		return 0
	}

	pages := totalCount / pageSize
	if totalCount%pageSize != 0 {
		pages++
	}
	return pages
}

package pagination

// OffsetParams is limit/offset addressing as used by queries
type OffsetParams struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// PageToOffset converts a 1-indexed page into limit/offset.
// Callers are expected to pass normalized values.
func PageToOffset(page, pageSize int) OffsetParams {
	return OffsetParams{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
}

// OffsetToPage converts limit/offset back into a page. Offsets that are not a
// multiple of limit round down to the page that contains them.
func OffsetToPage(offset, limit int) PageParams {
	if limit < 1 {
		return PageParams{Page: 1, PageSize: limit}
	}

	return PageParams{
		Page:     offset/limit + 1,
		PageSize: limit,
	}
}

// OffsetParams returns the limit/offset pair for normalized params
func (pp PageParams) OffsetParams() OffsetParams {
	return PageToOffset(pp.Page, pp.PageSize)
}

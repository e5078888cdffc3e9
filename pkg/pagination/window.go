package pagination

// Window returns the contiguous page numbers to render around currentPage,
// shifted to stay inside [1, totalPages]. A windowSize below 1 is treated as 1.
func Window(currentPage, totalPages, windowSize int) []int {
	if totalPages <= 0 {
		return []int{}
	}

	windowSize = min(max(windowSize, 1), totalPages)
	currentPage = min(max(currentPage, 1), totalPages)

	start := currentPage - windowSize/2
	end := start + windowSize - 1

	if start < 1 {
		start = 1
		end = min(totalPages, windowSize)
	}
	if end > totalPages {
		end = totalPages
		start = max(1, end-windowSize+1)
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

package pagination

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		windowSize  int
		want        []int
	}{
		{name: "centered", currentPage: 5, totalPages: 10, windowSize: 5, want: []int{3, 4, 5, 6, 7}},
		{name: "start of range", currentPage: 1, totalPages: 10, windowSize: 5, want: []int{1, 2, 3, 4, 5}},
		{name: "end of range", currentPage: 10, totalPages: 10, windowSize: 5, want: []int{6, 7, 8, 9, 10}},
		{name: "fewer pages than window", currentPage: 2, totalPages: 3, windowSize: 5, want: []int{1, 2, 3}},
		{name: "no pages", currentPage: 1, totalPages: 0, windowSize: 5, want: []int{}},
		{name: "even window", currentPage: 5, totalPages: 10, windowSize: 4, want: []int{3, 4, 5, 6}},
		{name: "zero window clamps to one", currentPage: 4, totalPages: 10, windowSize: 0, want: []int{4}},
		{name: "page past the end", currentPage: 40, totalPages: 10, windowSize: 3, want: []int{8, 9, 10}},
		{name: "page before the start", currentPage: -3, totalPages: 10, windowSize: 3, want: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Window(tt.currentPage, tt.totalPages, tt.windowSize))
		})
	}
}

func TestWindow_Bounds(t *testing.T) {
	for totalPages := 0; totalPages <= 30; totalPages++ {
		for windowSize := 1; windowSize <= 12; windowSize++ {
			for currentPage := 1; currentPage <= max(totalPages, 1); currentPage++ {
				got := Window(currentPage, totalPages, windowSize)

				assert.Len(t, got, min(windowSize, totalPages))
				for i, p := range got {
					assert.GreaterOrEqual(t, p, 1)
					assert.LessOrEqual(t, p, totalPages)
					if i > 0 {
						assert.Equal(t, got[i-1]+1, p)
					}
				}
			}
		}
	}
}

func TestPaginator_Window(t *testing.T) {
	for page := 1; page <= 12; page++ {
		snaps.MatchSnapshot(t, fmt.Sprint(Default().Window(page, 12)))
	}
}

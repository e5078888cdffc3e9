package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageToOffset(t *testing.T) {
	assert.Equal(t, OffsetParams{Limit: 20, Offset: 40}, PageToOffset(3, 20))
	assert.Equal(t, OffsetParams{Limit: 10, Offset: 0}, PageToOffset(1, 10))
}

func TestOffsetToPage(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		limit  int
		want   PageParams
	}{
		{name: "aligned", offset: 40, limit: 20, want: PageParams{Page: 3, PageSize: 20}},
		{name: "zero offset", offset: 0, limit: 20, want: PageParams{Page: 1, PageSize: 20}},
		{name: "misaligned rounds down", offset: 45, limit: 20, want: PageParams{Page: 3, PageSize: 20}},
		{name: "one before boundary", offset: 39, limit: 20, want: PageParams{Page: 2, PageSize: 20}},
		{name: "zero limit", offset: 10, limit: 0, want: PageParams{Page: 1, PageSize: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OffsetToPage(tt.offset, tt.limit))
		})
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	for page := 1; page <= 50; page++ {
		for pageSize := 1; pageSize <= 100; pageSize++ {
			op := PageToOffset(page, pageSize)
			got := OffsetToPage(op.Offset, op.Limit)
			if got.Page != page || got.PageSize != pageSize {
				t.Fatalf("round trip of page=%d pageSize=%d gave %+v", page, pageSize, got)
			}
		}
	}
}

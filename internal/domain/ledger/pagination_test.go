package ledger

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		maxLimit  int
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", "", 0, 1, 20},
		{"valid values", "3", "50", 0, 3, 50},
		{"non-numeric", "abc", "x", 0, 1, 20},
		{"zero", "0", "0", 0, 1, 20},
		{"negative", "-2", "-5", 0, 1, 20},
		{"capped at default max", "1", "500", 0, 1, 100},
		{"capped at configured max", "1", "80", 50, 1, 50},
		{"whitespace", " 2 ", " 10 ", 0, 2, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPageRequest(tt.page, tt.limit, tt.maxLimit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, PageRequest{Page: 3, Limit: 20}.Offset())
}

func TestNewPageRequest_HugePage(t *testing.T) {
	for _, page := range []string{strconv.Itoa(math.MaxInt), "461168601842738791"} {
		t.Run(page, func(t *testing.T) {
			p := NewPageRequest(page, "20", 0)
			assert.Positive(t, p.Offset())
			assert.Empty(t, PlanWindows([]int64{4, 2}, p.Offset(), p.Limit))
		})
	}
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, PageCount(0, 20))
	assert.Equal(t, 1, PageCount(20, 20))
	assert.Equal(t, 2, PageCount(21, 20))
	assert.Equal(t, 5, PageCount(100, 20))
	assert.Equal(t, 1, PageCount(5, 0))
}

func TestPaginate(t *testing.T) {
	got := Paginate(PageRequest{Page: 2, Limit: 10}, 35)
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 35, Pages: 4}, got)
}

package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPlanWindows(t *testing.T) {
	tests := []struct {
		name   string
		counts []int64
		offset int
		limit  int
		want   []Window
	}{
		{
			name:   "first page inside first segment",
			counts: []int64{30, 10},
			offset: 0, limit: 20,
			want: []Window{{Segment: 0, Offset: 0, Limit: 20}},
		},
		{
			name:   "page straddles segments",
			counts: []int64{25, 10},
			offset: 20, limit: 10,
			want: []Window{{Segment: 0, Offset: 20, Limit: 5}, {Segment: 1, Offset: 0, Limit: 5}},
		},
		{
			name:   "page inside second segment",
			counts: []int64{5, 30},
			offset: 10, limit: 10,
			want: []Window{{Segment: 1, Offset: 5, Limit: 10}},
		},
		{
			name:   "empty first segment is skipped",
			counts: []int64{0, 3},
			offset: 0, limit: 20,
			want: []Window{{Segment: 1, Offset: 0, Limit: 3}},
		},
		{
			name:   "past the end",
			counts: []int64{5, 5},
			offset: 20, limit: 20,
			want: nil,
		},
		{
			name:   "zero limit",
			counts: []int64{5},
			offset: 0, limit: 0,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlanWindows(tt.counts, tt.offset, tt.limit))
		})
	}
}

func TestPlanWindows_PagesCoverConcatenationExactlyOnce(t *testing.T) {
	counts := []int64{7, 0, 5, 9}
	var total int64
	for _, c := range counts {
		total += c
	}

	for _, limit := range []int{1, 3, 4, 20} {
		seen := map[[2]int]int{}
		for page := 1; page <= PageCount(total, limit); page++ {
			for _, w := range PlanWindows(counts, (page-1)*limit, limit) {
				for i := 0; i < w.Limit; i++ {
					seen[[2]int{w.Segment, w.Offset + i}]++
				}
			}
		}
		assert.Len(t, seen, int(total), "limit %d", limit)
		for key, n := range seen {
			assert.Equal(t, 1, n, "row %v seen %d times at limit %d", key, n, limit)
			assert.Less(t, int64(key[1]), counts[key[0]])
		}
	}
}

func TestPageAmount(t *testing.T) {
	items := []LedgerItem{
		{Amount: decimal.RequireFromString("-50")},
		{Amount: decimal.RequireFromString("-20.005")},
		{Amount: decimal.RequireFromString("10")},
	}
	got := PageAmount(items)
	assertAmount(t, "-60.01", got.Total)
	assert.Equal(t, int64(3), got.Count)

	empty := PageAmount(nil)
	assert.True(t, empty.Total.IsZero())
}

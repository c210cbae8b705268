package ledger

// Window is the part of one segment that falls inside a requested page
type Window struct {
	Segment int
	Offset  int
	Limit   int
}

// PlanWindows implements the concatenation merge policy used by multi-kind views.
//
// The view is the virtual concatenation of the segments in order, each segment
// keeping its own ordering; nothing is interleaved or re-sorted across
// segments. Given the row count of each segment, PlanWindows returns the
// per-segment windows that together make up rows [offset, offset+limit) of
// that concatenation, in output order. Segments that contribute nothing are
// omitted.
func PlanWindows(counts []int64, offset, limit int) []Window {
	if limit <= 0 {
		return nil
	}
	if offset < 0 {
		offset = 0
	}
	var windows []Window
	start := int64(offset)
	remaining := int64(limit)
	var base int64
	for i, count := range counts {
		if remaining == 0 {
			break
		}
		if count <= 0 {
			continue
		}
		end := base + count
		if start < end {
			local := start - base
			n := min(count-local, remaining)
			windows = append(windows, Window{Segment: i, Offset: int(local), Limit: int(n)})
			start += n
			remaining -= n
		}
		base = end
	}
	return windows
}

// PageAmount sums the signed amounts of a page of items
func PageAmount(items []LedgerItem) Totals {
	out := Totals{Count: int64(len(items))}
	for _, item := range items {
		out.Total = SumAmounts(out.Total, item.Amount)
	}
	out.Total = NormalizeAmount(out.Total)
	return out
}

package ledger

import (
	"math"
	"strconv"
	"strings"
)

// Pagination defaults
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// PageRequest is a validated page/limit pair
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest coerces raw page and limit values. Missing, malformed or
// non-positive input falls back to the defaults; limit is capped at maxLimit
// (MaxLimit when maxLimit is not positive). Page is capped so the offset
// always fits in an int.
func NewPageRequest(page, limit string, maxLimit int) PageRequest {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	p := PageRequest{
		Page:  parsePositive(page, DefaultPage),
		Limit: parsePositive(limit, DefaultLimit),
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if lastPage := math.MaxInt / p.Limit; p.Page > lastPage {
		p.Page = lastPage
	}
	return p
}

// Offset returns the row offset of the page
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination describes the page returned alongside a list
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Paginate builds the pagination block for a view of total rows
func Paginate(p PageRequest, total int64) Pagination {
	return Pagination{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: PageCount(total, p.Limit),
	}
}

// PageCount returns max(1, ceil(total/limit))
func PageCount(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 1
	}
	pages := (total + int64(limit) - 1) / int64(limit)
	return int(max(pages, 1))
}

func parsePositive(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

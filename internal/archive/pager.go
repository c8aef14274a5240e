package archive

import "fmt"

// PageSize is the fixed number of posts per page.
const PageSize = 10

// Pager tracks the current 1-based page over a list of n items. It is
// a value type; navigation returns the updated pager.
type Pager struct {
	Page int
}

// NewPager returns a pager positioned on the first page.
func NewPager() Pager {
	return Pager{Page: 1}
}

// TotalPages returns the page count for n items. An empty list still
// has one page so the pager bar never renders "0 / 0".
func TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// Clamp forces the page into [1, TotalPages(n)]. Callers clamp before
// every render so shrinking result sets can never leave the pager on a
// page that no longer exists.
func (p Pager) Clamp(n int) Pager {
	total := TotalPages(n)
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > total {
		p.Page = total
	}
	return p
}

// First jumps to the first page.
func (p Pager) First() Pager {
	p.Page = 1
	return p
}

// Prev moves one page back, stopping at the first page.
func (p Pager) Prev() Pager {
	if p.Page > 1 {
		p.Page--
	}
	return p
}

// Next moves one page forward, stopping at the last page of n items.
func (p Pager) Next(n int) Pager {
	if p.Page < TotalPages(n) {
		p.Page++
	}
	return p
}

// Last jumps to the last page of n items.
func (p Pager) Last(n int) Pager {
	p.Page = TotalPages(n)
	return p
}

// AtFirst reports whether backward navigation would be a no-op.
func (p Pager) AtFirst() bool {
	return p.Page <= 1
}

// AtLast reports whether forward navigation would be a no-op.
func (p Pager) AtLast(n int) bool {
	return p.Page >= TotalPages(n)
}

// Bounds returns the half-open slice window [start, end) of the
// current page over n items.
func (p Pager) Bounds(n int) (start, end int) {
	start = (p.Page - 1) * PageSize
	if start > n {
		start = n
	}
	end = start + PageSize
	if end > n {
		end = n
	}
	return start, end
}

// Info renders the "current / total" indicator for n items.
func (p Pager) Info(n int) string {
	return fmt.Sprintf("%d / %d", p.Page, TotalPages(n))
}

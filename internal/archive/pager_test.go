package archive

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 1},
		{11, 2},
		{20, 2},
		{23, 3},
		{100, 10},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.n); got != tt.want {
			t.Errorf("TotalPages(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPagerBounds(t *testing.T) {
	tests := []struct {
		page      int
		n         int
		wantStart int
		wantEnd   int
	}{
		{1, 23, 0, 10},
		{2, 23, 10, 20},
		{3, 23, 20, 23},
		{1, 5, 0, 5},
		{1, 0, 0, 0},
	}
	for _, tt := range tests {
		start, end := (Pager{Page: tt.page}).Bounds(tt.n)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("Bounds(page=%d, n=%d) = [%d, %d), want [%d, %d)", tt.page, tt.n, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestPagerClamp(t *testing.T) {
	tests := []struct {
		page int
		n    int
		want int
	}{
		{5, 23, 3},
		{3, 23, 3},
		{1, 23, 1},
		{0, 23, 1},
		{-2, 23, 1},
		{7, 0, 1},
	}
	for _, tt := range tests {
		got := (Pager{Page: tt.page}).Clamp(tt.n)
		if got.Page != tt.want {
			t.Errorf("Clamp(page=%d, n=%d) = %d, want %d", tt.page, tt.n, got.Page, tt.want)
		}
	}
}

func TestPagerNavigation(t *testing.T) {
	const n = 23
	p := NewPager()

	if !p.AtFirst() {
		t.Error("new pager should be at first page")
	}
	if p.AtLast(n) {
		t.Error("new pager should not be at last page of 23 items")
	}

	p = p.Prev()
	if p.Page != 1 {
		t.Errorf("Prev at first page moved to %d", p.Page)
	}

	p = p.Next(n)
	if p.Page != 2 {
		t.Errorf("Next = page %d, want 2", p.Page)
	}

	p = p.Last(n)
	if p.Page != 3 || !p.AtLast(n) {
		t.Errorf("Last = page %d, want 3", p.Page)
	}

	p = p.Next(n)
	if p.Page != 3 {
		t.Errorf("Next at last page moved to %d", p.Page)
	}

	p = p.First()
	if p.Page != 1 {
		t.Errorf("First = page %d, want 1", p.Page)
	}
}

func TestPagerNavigationEmptyList(t *testing.T) {
	p := NewPager()
	for _, move := range []Pager{p.Next(0), p.Prev(), p.First(), p.Last(0)} {
		if move.Page != 1 {
			t.Errorf("navigation over empty list left page %d, want 1", move.Page)
		}
	}
}

func TestPagerInfo(t *testing.T) {
	tests := []struct {
		page int
		n    int
		want string
	}{
		{1, 23, "1 / 3"},
		{3, 23, "3 / 3"},
		{1, 0, "1 / 1"},
		{2, 40, "2 / 4"},
	}
	for _, tt := range tests {
		if got := (Pager{Page: tt.page}).Info(tt.n); got != tt.want {
			t.Errorf("Info(page=%d, n=%d) = %q, want %q", tt.page, tt.n, got, tt.want)
		}
	}
}

func TestPagerClampAfterShrink(t *testing.T) {
	// On page 3 of 23 items, then the filter narrows to 4 items.
	p := Pager{Page: 3}.Clamp(4)
	if p.Page != 1 {
		t.Errorf("expected clamp to page 1, got %d", p.Page)
	}
	start, end := p.Bounds(4)
	if start != 0 || end != 4 {
		t.Errorf("expected bounds [0, 4), got [%d, %d)", start, end)
	}
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/newsarchive-kr/newsarchive/internal/archive"
)

// toolbar renders the category tabs plus the sort and theme labels.
// Exactly one category is active; index 0 is the synthetic "전체" tab
// that matches everything.
type toolbar struct {
	categories []string
	active     int
	filterMode bool
	cursor     int
}

func newToolbar(categories []string) toolbar {
	return toolbar{categories: categories}
}

// tabs returns the rendered tab labels including the leading 전체 tab.
func (t *toolbar) tabs() []string {
	return append([]string{"전체"}, t.categories...)
}

// current returns the category term for the active tab.
func (t *toolbar) current() string {
	if t.active == 0 || t.active > len(t.categories) {
		return archive.CategoryAll
	}
	return t.categories[t.active-1]
}

// label returns the active tab's display name for the status bar.
func (t *toolbar) label() string {
	return t.tabs()[t.active]
}

func (t *toolbar) enterFilterMode() {
	t.filterMode = true
	t.cursor = t.active
}

func (t *toolbar) exitFilterMode() {
	t.filterMode = false
}

func (t *toolbar) moveLeft() {
	if t.cursor > 0 {
		t.cursor--
	}
}

func (t *toolbar) moveRight() {
	if t.cursor < len(t.categories) {
		t.cursor++
	}
}

// selectCursor activates the tab under the cursor and reports whether
// the active category changed.
func (t *toolbar) selectCursor() bool {
	if t.cursor == t.active {
		return false
	}
	t.active = t.cursor
	return true
}

// selectIndex activates the tab at idx (0 = 전체). Out-of-range
// indexes are ignored.
func (t *toolbar) selectIndex(idx int) bool {
	if idx < 0 || idx > len(t.categories) || idx == t.active {
		return false
	}
	t.active = idx
	t.cursor = idx
	return true
}

// reset returns to the 전체 tab.
func (t *toolbar) reset() {
	t.active = 0
	t.cursor = 0
	t.filterMode = false
}

func (t *toolbar) render(width int, st Styles, sortLabel, themeLabel string) string {
	sep := st.TabSep.Render(" ")
	var row string
	for i, name := range t.tabs() {
		style := st.TabInactive
		if i == t.active {
			style = st.TabActive
		}
		label := name
		if t.filterMode && i == t.cursor {
			label = "[" + name + "]"
		}
		part := style.Render(label)

		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	right := st.ToolbarMeta.Render("정렬: " + sortLabel + " · 테마: " + themeLabel + " ")
	gap := width - lipgloss.Width(row) - lipgloss.Width(right)
	if gap < 0 {
		return row
	}
	return row + fmt.Sprintf("%*s", gap, "") + right
}

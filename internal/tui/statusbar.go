package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/newsarchive-kr/newsarchive/internal/archive"
)

// renderStatusBar renders the bottom bar: result summary on the left,
// key hints on the right. A load failure replaces the summary.
func renderStatusBar(st Styles, width int, summary, hints string) string {
	left := " " + summary
	right := " " + hints + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right
	return st.StatusBar.Width(width).Render(bar)
}

// renderPagerBar renders the page controls. Controls that cannot move
// are dimmed.
func renderPagerBar(st Styles, width int, pager archive.Pager, n int) string {
	first, prev, next, last := "«", "‹", "›", "»"

	var parts []string
	if pager.AtFirst() {
		parts = append(parts, st.PagerOff.Render(first), st.PagerOff.Render(prev))
	} else {
		parts = append(parts, st.PagerOn.Render(first), st.PagerOn.Render(prev))
	}
	parts = append(parts, st.PagerNum.Render(pager.Info(n)))
	if pager.AtLast(n) {
		parts = append(parts, st.PagerOff.Render(next), st.PagerOff.Render(last))
	} else {
		parts = append(parts, st.PagerOn.Render(next), st.PagerOn.Render(last))
	}

	row := strings.Join(parts, "  ")
	return lipgloss.Place(width, 1, lipgloss.Center, lipgloss.Center, row)
}

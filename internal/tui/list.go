package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/newsarchive-kr/newsarchive/internal/archive"
)

// renderListItem renders one post as three lines: ranked title,
// summary, meta. rank is the post's 1-based position in the whole
// filtered view, not within the page.
func renderListItem(p archive.Post, rank int, selected bool, width int, now time.Time, st Styles) string {
	if width < 10 {
		width = 30
	}

	title := p.Title
	if title == "" {
		title = "제목 없음"
	}
	prefix := fmt.Sprintf("%3d. ", rank)
	marker := "  "
	titleStyle := st.ItemTitle
	if selected {
		marker = "› "
		titleStyle = st.ItemSelected
	}
	titleLine := marker + st.Rank.Render(prefix) + titleStyle.Render(truncateStr(title, width-len(prefix)-4))

	summary := strings.Join(strings.Fields(p.Summary), " ")
	summaryLine := "       " + st.ItemSummary.Render(truncateStr(summary, width-9))

	metaLine := "       " + st.ItemMeta.Render(relativeTime(p.CollectedAt(), now)) +
		st.ItemMeta.Render(" · ") + st.ItemCategory.Render(orDash(p.Category)) +
		st.ItemMeta.Render(" · "+dateOnly(p.PublishedDate()))

	return titleLine + "\n" + summaryLine + "\n" + metaLine
}

// renderList renders the current page of the filtered view. Rows that
// do not fit the height are cut from the bottom.
func renderList(view []archive.Post, pager archive.Pager, cursor int, width, height int, now time.Time, st Styles) string {
	if len(view) == 0 {
		empty := st.EmptyMessage.Render("표시할 게시글이 없습니다")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, empty)
	}

	start, end := pager.Bounds(len(view))
	var b strings.Builder
	for i, p := range view[start:end] {
		b.WriteString(renderListItem(p, start+i+1, i == cursor, width, now, st))
		if start+i < end-1 {
			b.WriteString("\n\n")
		}
	}

	lines := strings.Split(b.String(), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

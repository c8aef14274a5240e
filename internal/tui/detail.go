package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/newsarchive-kr/newsarchive/internal/archive"
)

// aiSummaryFallback is emitted by the collector when summarization
// failed; the viewer shows it verbatim when ai_summary is empty too.
const aiSummaryFallback = "요약할 수 없는 내용입니다"

// emptyBulletsFallback is the single bullet shown when the body has no
// usable lines.
const emptyBulletsFallback = "요약 정보가 없습니다."

// bullets splits text into bullet items: one per non-empty trimmed
// line, with any leading list marker stripped.
func bullets(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "-")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}

// renderDetail renders the full post view. scroll drops lines from the
// top; the result is padded or cut to height.
func renderDetail(p archive.Post, width, height, scroll int, st Styles) string {
	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := p.Title
	if title == "" {
		title = "제목 없음"
	}
	titleBlock := st.DetailTitle.Width(contentWidth).Render(title)

	link := "(링크 없음)"
	if p.URL != "" {
		link = p.URL
	}
	linkBlock := st.DetailLink.Width(contentWidth).Render(link)

	meta := orDash(p.Category) +
		" · 수집 " + dateTime(p.FetchedAt) +
		" · 발행 " + dateOnly(p.PublishedDate())
	metaBlock := st.DetailMeta.Render(meta)

	aiText := p.AISummary
	if aiText == "" {
		aiText = aiSummaryFallback
	}
	aiBlock := st.DetailHeading.Render("AI 요약") + "\n" +
		st.DetailBody.Width(contentWidth).Render(wrapText(aiText, contentWidth))

	body := p.Body
	if body == "" {
		body = p.Summary
	}
	items := bullets(body)
	if len(items) == 0 {
		items = []string{emptyBulletsFallback}
	}
	var bulletLines []string
	for _, item := range items {
		bulletLines = append(bulletLines, st.DetailBody.Render(wrapText("• "+item, contentWidth)))
	}
	bulletBlock := st.DetailHeading.Render("요약") + "\n" + strings.Join(bulletLines, "\n")

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleBlock, linkBlock, metaBlock, "", aiBlock, "", bulletBlock)

	lines := strings.Split(content, "\n")
	if scroll > 0 {
		if scroll >= len(lines) {
			scroll = len(lines) - 1
		}
		lines = lines[scroll:]
	}
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// wrapText word-wraps s to width. Words longer than the width stay on
// their own line.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if lipgloss.Width(line)+1+lipgloss.Width(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

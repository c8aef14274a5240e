package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/newsarchive-kr/newsarchive/internal/archive"
)

func TestRenderListItem(t *testing.T) {
	p := archive.Post{
		Title:              "퇴근 후 공부하는 개발자",
		Summary:            "줄\n바꿈   텍스트",
		Category:           "IT",
		FetchedAt:          testNow.Add(-3 * time.Hour).Format(time.RFC3339),
		ArticlePublishedAt: "2025-07-01T10:00:00Z",
	}
	got := renderListItem(p, 11, false, 80, testNow, NewStyles(Light))

	if !strings.Contains(got, " 11. ") {
		t.Errorf("missing global rank:\n%s", got)
	}
	if !strings.Contains(got, "퇴근 후 공부하는 개발자") {
		t.Errorf("missing title:\n%s", got)
	}
	if strings.Contains(got, "›") {
		t.Errorf("unselected item carries selection marker:\n%s", got)
	}
	if !strings.Contains(got, "줄 바꿈 텍스트") {
		t.Errorf("summary whitespace not collapsed:\n%s", got)
	}
	if !strings.Contains(got, "3시간 전 · IT · 2025-07-01") {
		t.Errorf("unexpected meta line:\n%s", got)
	}
}

func TestRenderListItemSelected(t *testing.T) {
	p := archive.Post{Title: "기사", FetchedAt: testNow.Format(time.RFC3339)}
	got := renderListItem(p, 1, true, 80, testNow, NewStyles(Light))
	if !strings.Contains(got, "› ") {
		t.Errorf("selected item missing marker:\n%s", got)
	}
}

func TestRenderListItemFallbacks(t *testing.T) {
	got := renderListItem(archive.Post{}, 1, false, 80, testNow, NewStyles(Light))
	if !strings.Contains(got, "제목 없음") {
		t.Errorf("missing untitled fallback:\n%s", got)
	}
	// No category and no parsable dates.
	if strings.Count(got, "-") < 2 {
		t.Errorf("expected dashes for missing meta fields:\n%s", got)
	}
}

func TestRenderListGlobalRanksAcrossPages(t *testing.T) {
	view := archiveFixture(12)
	pager := archive.NewPager().Next(len(view))

	got := renderList(view, pager, 0, 80, 40, testNow, NewStyles(Light))
	if !strings.Contains(got, " 11. ") || !strings.Contains(got, " 12. ") {
		t.Errorf("expected ranks 11 and 12 on page 2:\n%s", got)
	}
	if strings.Contains(got, "  1. ") {
		t.Errorf("page 1 rank leaked onto page 2:\n%s", got)
	}
	if !strings.Contains(got, "기사 11") {
		t.Errorf("expected 11th post on page 2:\n%s", got)
	}
}

func TestRenderListEmpty(t *testing.T) {
	got := renderList(nil, archive.NewPager(), 0, 80, 10, testNow, NewStyles(Light))
	if !strings.Contains(got, "표시할 게시글이 없습니다") {
		t.Errorf("missing empty message:\n%s", got)
	}
}

func TestRenderListCutsToHeight(t *testing.T) {
	view := archiveFixture(10)
	got := renderList(view, archive.NewPager(), 0, 80, 7, testNow, NewStyles(Light))
	if n := len(strings.Split(got, "\n")); n > 7 {
		t.Errorf("rendered %d lines for height 7", n)
	}
}

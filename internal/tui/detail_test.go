package tui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/newsarchive-kr/newsarchive/internal/archive"
)

func TestBullets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"dash markers with blank line", "- a\n- b\n\n- c", []string{"a", "b", "c"}},
		{"no markers", "첫 줄\n둘째 줄", []string{"첫 줄", "둘째 줄"}},
		{"marker without space", "-항목", []string{"항목"}},
		{"whitespace lines dropped", "  \n- a\n\t\n", []string{"a"}},
		{"marker-only line dropped", "-\n- a", []string{"a"}},
		{"empty input", "", nil},
		{"only blank lines", "\n\n  \n", nil},
	}
	for _, tt := range tests {
		got := bullets(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: bullets(%q) = %v, want %v", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestRenderDetailShowsPost(t *testing.T) {
	p := archive.Post{
		ID:                 "p1",
		Title:              "오픈AI 신모델 공개",
		Body:               "- 새 모델 발표\n- 성능 개선",
		AISummary:          "신모델이 공개되었다.",
		URL:                "https://news.example.com/1",
		Category:           "IT",
		FetchedAt:          "2025-07-03T09:00:00+09:00",
		ArticlePublishedAt: "2025-07-02T18:00:00+09:00",
	}
	out := renderDetail(p, 80, 30, 0, NewStyles(Light))

	for _, want := range []string{
		"오픈AI 신모델 공개",
		"https://news.example.com/1",
		"IT",
		"수집 2025-07-03 09:00",
		"발행 2025-07-02",
		"신모델이 공개되었다.",
		"• 새 모델 발표",
		"• 성능 개선",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDetailFallbacks(t *testing.T) {
	p := archive.Post{ID: "p2"}
	out := renderDetail(p, 80, 30, 0, NewStyles(Light))

	for _, want := range []string{
		"제목 없음",
		"(링크 없음)",
		aiSummaryFallback,
		emptyBulletsFallback,
		"수집 -",
		"발행 -",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing fallback %q:\n%s", want, out)
		}
	}
}

func TestRenderDetailUsesSummaryWhenBodyEmpty(t *testing.T) {
	p := archive.Post{ID: "p3", Title: "제목", Summary: "- 요약 항목"}
	out := renderDetail(p, 80, 30, 0, NewStyles(Light))
	if !strings.Contains(out, "• 요약 항목") {
		t.Errorf("expected summary used as bullet source:\n%s", out)
	}
}

func TestRenderDetailScroll(t *testing.T) {
	p := archive.Post{ID: "p4", Title: "스크롤 제목", Body: "- a\n- b"}
	top := renderDetail(p, 80, 5, 0, NewStyles(Light))
	scrolled := renderDetail(p, 80, 5, 3, NewStyles(Light))
	if top == scrolled {
		t.Error("expected scroll to change output")
	}
	if !strings.Contains(top, "스크롤 제목") {
		t.Errorf("unscrolled view missing title:\n%s", top)
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
}

func TestWrapTextNoWidth(t *testing.T) {
	if got := wrapText("abc", 0); got != "abc" {
		t.Errorf("wrapText with zero width = %q", got)
	}
}

package tui

import (
	"fmt"
	"time"

	"github.com/newsarchive-kr/newsarchive/internal/archive"
)

// relativeTime renders how long ago t was, rounding down at each tier.
// Future timestamps clamp to zero seconds.
func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%d초 전", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%d분 전", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d시간 전", int(d.Hours()))
	}
	days := int(d.Hours() / 24)
	switch {
	case days < 30:
		return fmt.Sprintf("%d일 전", days)
	case days/30 < 12:
		return fmt.Sprintf("%d개월 전", days/30)
	default:
		return fmt.Sprintf("%d년 전", days/365)
	}
}

// dateOnly renders a collector timestamp as a plain date, or "-" when
// the value is missing or malformed.
func dateOnly(s string) string {
	if s == "" {
		return "-"
	}
	t := archive.ParseTime(s)
	if t.Equal(time.Unix(0, 0).UTC()) {
		return "-"
	}
	return t.Format("2006-01-02")
}

// dateTime renders a collector timestamp with minutes, or "-" when
// missing or malformed.
func dateTime(s string) string {
	if s == "" {
		return "-"
	}
	t := archive.ParseTime(s)
	if t.Equal(time.Unix(0, 0).UTC()) {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

// orDash substitutes "-" for empty strings in meta lines.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

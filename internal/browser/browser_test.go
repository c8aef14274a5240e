package browser

import (
	"errors"
	"strings"
	"testing"
)

func TestOpenRejectsBadURLs(t *testing.T) {
	tests := []struct {
		url string
	}{
		{"file:///etc/passwd"},
		{"javascript:alert(1)"},
		{"ftp://example.com"},
	}
	for _, tt := range tests {
		if err := Open(tt.url); err == nil {
			t.Errorf("Open(%q): expected error, got nil", tt.url)
		}
	}
}

func TestOpenEmptyURL(t *testing.T) {
	err := Open("")
	if !errors.Is(err, ErrNoURL) {
		t.Errorf("Open(\"\") = %v, want ErrNoURL", err)
	}
}

func TestCommandPerPlatform(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "open"},
		{"windows", "rundll32"},
		{"linux", "xdg-open"},
		{"freebsd", "xdg-open"},
	}
	for _, tt := range tests {
		cmd := command(tt.goos, "https://example.com")
		if len(cmd.Args) == 0 || !strings.HasSuffix(cmd.Args[0], tt.want) {
			t.Errorf("command(%q) = %v, want launcher %q", tt.goos, cmd.Args, tt.want)
		}
		if cmd.Args[len(cmd.Args)-1] != "https://example.com" {
			t.Errorf("command(%q) missing URL argument: %v", tt.goos, cmd.Args)
		}
	}
}

// Package browser hands article URLs to the system browser. The
// viewer never renders remote pages itself.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// ErrNoURL is returned for posts that carry no original link.
var ErrNoURL = errors.New("post has no url")

// Open launches the system browser on rawURL in the background.
func Open(rawURL string) error {
	if rawURL == "" {
		return ErrNoURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}
	return command(runtime.GOOS, rawURL).Start()
}

// command returns the platform launcher invocation for rawURL.
func command(goos, rawURL string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", rawURL)
	case "windows":
		// rundll32 avoids cmd /c start shell interpretation
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		return exec.Command("xdg-open", rawURL)
	}
}

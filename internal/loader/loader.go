// Package loader reads the archive JSON produced by the collector
// pipeline, either over HTTP or from a local file. The archive is
// loaded exactly once per run; there is no retry or polling.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/newsarchive-kr/newsarchive/internal/archive"
)

// Loader fetches the full post collection from one source.
type Loader interface {
	Load(ctx context.Context) ([]archive.Post, error)
}

// New returns a loader for source: http(s) URLs are fetched with
// caching disabled, anything else is treated as a local file path.
func New(source string, timeout time.Duration) Loader {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return &HTTPLoader{URL: source, Client: sharedClient(timeout)}
	}
	return &FileLoader{Path: source}
}

// HTTPLoader fetches the archive over HTTP. Every request carries
// no-cache headers plus a timestamp query parameter so intermediaries
// can never serve a stale copy of the archive.
type HTTPLoader struct {
	URL    string
	Client *http.Client
}

func (l *HTTPLoader) Load(ctx context.Context) ([]archive.Post, error) {
	reqURL, err := bustCache(l.URL, time.Now())
	if err != nil {
		return nil, fmt.Errorf("fetching archive: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching archive: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching archive: HTTP %d", resp.StatusCode)
	}

	var posts []archive.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("decoding archive: %w", err)
	}
	return posts, nil
}

// bustCache appends a t=<unix millis> query parameter to rawURL.
func bustCache(rawURL string, now time.Time) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(now.UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FileLoader reads the archive from disk. Used for local development
// against a checked-out data file.
type FileLoader struct {
	Path string
}

func (l *FileLoader) Load(ctx context.Context) ([]archive.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}
	var posts []archive.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("decoding archive: %w", err)
	}
	return posts, nil
}

var (
	transport     *http.Transport
	transportOnce sync.Once
)

// sharedClient returns an HTTP client backed by the shared pooled
// transport. The timeout bounds the whole request including body read.
func sharedClient(timeout time.Duration) *http.Client {
	transportOnce.Do(func() {
		transport = &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2:   true,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		}
	})
	return &http.Client{Transport: transport, Timeout: timeout}
}

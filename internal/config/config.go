package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type Config struct {
	// DataSource is where the archive JSON lives: an http(s) URL or a
	// local file path.
	DataSource string `yaml:"data_source"`

	// RequestTimeout bounds the archive fetch, e.g. "15s".
	RequestTimeout string `yaml:"request_timeout,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Timeout returns the parsed request timeout, defaulting to 15s when
// unset or unparseable.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "newsarchive", "config.yaml")
}

// PrefsPath is where UI preferences (theme) are persisted.
func PrefsPath() string {
	return filepath.Join(xdg.DataHome, "newsarchive", "prefs.db")
}

// LogDir is where run logs are written.
func LogDir() string {
	return filepath.Join(xdg.StateHome, "newsarchive", "logs")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path, falling back to the default path when
// path is empty. A missing file writes the embedded defaults there on
// first run and returns them.
func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.DataSource == "" {
		cfg.DataSource = defaults.DataSource
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.DataSource == "" {
		return fmt.Errorf("data_source is required")
	}
	if strings.Contains(cfg.DataSource, "://") {
		u, err := url.Parse(cfg.DataSource)
		if err != nil {
			return fmt.Errorf("data_source: invalid url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("data_source: url scheme must be http or https, got %q", u.Scheme)
		}
	}
	if cfg.RequestTimeout != "" {
		if _, err := time.ParseDuration(cfg.RequestTimeout); err != nil {
			return fmt.Errorf("request_timeout: %w", err)
		}
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unknown level %q (valid: debug, info, warn, error)", cfg.LogLevel)
	}
	return nil
}

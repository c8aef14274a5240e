// Package logging writes run logs to a dated file. The TUI owns the
// terminal, so nothing is ever logged to stdout or stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

var (
	logger  *log.Logger
	logFile *os.File
)

// Init opens today's log file under dir and installs the package
// logger at the given level. Unknown levels fall back to info.
func Init(dir, level string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	name := fmt.Sprintf("newsarchive-%s.log", time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           lvl,
	})
	return nil
}

// Close flushes and closes the log file. Safe to call when Init was
// never run.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = nil
}

func Debug(msg string, keyvals ...interface{}) {
	if logger != nil {
		logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if logger != nil {
		logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if logger != nil {
		logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if logger != nil {
		logger.Error(msg, keyvals...)
	}
}

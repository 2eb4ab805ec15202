package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// rotateAt is the log file size that triggers rotation (5 MB).
	rotateAt = 5 * 1024 * 1024
	// keepBackups is how many rotated files survive.
	keepBackups = 3
)

// redacted lists attribute keys whose values never reach a log sink.
// Request bodies and bearer tokens must not be written to disk.
var redacted = map[string]bool{
	"token":         true,
	"authorization": true,
	"body":          true,
}

// InitLogger opens the per-user log file for appName and returns a JSON logger
// writing to it. Log files live in:
//   - macOS:   ~/Library/Logs/<app>/<app>.log
//   - Linux:   ~/.local/state/<app>/<app>.log
//   - Windows: %LOCALAPPDATA%\<app>\Logs\<app>.log
//
// debug switches to DEBUG level and adds source locations.
func InitLogger(appName string, debug bool) (*slog.Logger, error) {
	logPath, err := getLogFilePath(appName)
	if err != nil {
		return nil, fmt.Errorf("failed to get log file path: %w", err)
	}

	f, err := openLogFile(logPath)
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewJSONHandler(f, handlerOptions(debug, debug))), nil
}

// NewConsoleLogger returns a text logger writing to w. The terminal commands
// use it for output the user watches live.
func NewConsoleLogger(w io.Writer, debug bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, handlerOptions(debug, false)))
}

// NewNopLogger returns a logger that discards everything. For tests.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Tee returns a logger that writes every record to each of the given loggers.
func Tee(loggers ...*slog.Logger) *slog.Logger {
	handlers := make([]slog.Handler, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			handlers = append(handlers, l.Handler())
		}
	}
	return slog.New(teeHandler(handlers))
}

func handlerOptions(debug, source bool) *slog.HandlerOptions {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{
		Level:       level,
		AddSource:   source,
		ReplaceAttr: redact,
	}
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if redacted[strings.ToLower(a.Key)] {
		return slog.String(a.Key, "[redacted]")
	}
	return a
}

func openLogFile(logPath string) (*os.File, error) {
	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	if err := rotate(logPath, rotateAt, keepBackups); err != nil {
		return nil, fmt.Errorf("failed to rotate log file: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}
	return f, nil
}

// rotate moves logPath to logPath.1 once it reaches limit bytes, shifting
// older backups up by one and dropping anything past backups.
func rotate(logPath string, limit int64, backups int) error {
	info, err := os.Stat(logPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() < limit {
		return nil
	}

	backup := func(n int) string { return fmt.Sprintf("%s.%d", logPath, n) }

	_ = os.Remove(backup(backups))
	for n := backups - 1; n >= 1; n-- {
		_ = os.Rename(backup(n), backup(n+1))
	}

	if err := os.Rename(logPath, backup(1)); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

// getLogFilePath returns where appName's log file lives on this platform.
func getLogFilePath(appName string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	file := appName + ".log"
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", appName, file), nil
	case "linux":
		return filepath.Join(homeDir, ".local", "state", appName, file), nil
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			base = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(base, appName, "Logs", file), nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// teeHandler fans records out to several handlers.
type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}

// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package logging wraps log/slog for CLI and TUI use.
//
// In CLI mode records are written as text to a writer. In TUI mode the
// screen belongs to the renderer, so records are formatted into single
// lines and handed to a sink that feeds the log pane.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

// Log levels.
const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel converts to the slog level.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps a case-insensitive level name, defaulting to info.
func ParseLevel(name string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Sink receives formatted log lines in TUI mode.
type Sink func(line string)

var (
	mu            sync.RWMutex
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil)) //nolint:gochecknoglobals
)

// InitForCLI routes log records to output as text.
func InitForCLI(level LogLevel, output io.Writer) {
	setLogger(slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level.SlogLevel()})))
}

// InitForTUI routes log records to sink, one line per record.
func InitForTUI(level LogLevel, sink Sink) {
	setLogger(slog.New(&sinkHandler{level: level.SlogLevel(), sink: sink}))
}

func setLogger(logger *slog.Logger) {
	mu.Lock()
	defaultLogger = logger
	mu.Unlock()
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return defaultLogger
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...any) {
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	Logger().LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...any) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...any) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...any) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...any) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

// sinkHandler is a slog.Handler writing "[LEVEL] subsystem: message key=value" lines.
type sinkHandler struct {
	level slog.Level
	sink  Sink
	attrs []slog.Attr
}

func (h *sinkHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *sinkHandler) Handle(_ context.Context, record slog.Record) error {
	var (
		subsystem string
		extra     []string
	)

	collect := func(attr slog.Attr) bool {
		if attr.Key == "subsystem" {
			subsystem = attr.Value.String()
		} else {
			extra = append(extra, attr.Key+"="+attr.Value.String())
		}

		return true
	}

	for _, attr := range h.attrs {
		collect(attr)
	}

	record.Attrs(collect)

	var line strings.Builder

	line.WriteString("[" + record.Level.String() + "] ")

	if subsystem != "" {
		line.WriteString(subsystem + ": ")
	}

	line.WriteString(record.Message)

	if len(extra) > 0 {
		line.WriteString(" " + strings.Join(extra, " "))
	}

	h.sink(line.String())

	return nil
}

func (h *sinkHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sinkHandler{level: h.level, sink: h.sink, attrs: append(append([]slog.Attr(nil), h.attrs...), attrs...)}
}

// WithGroup flattens groups; the log pane has no room for nesting.
func (h *sinkHandler) WithGroup(_ string) slog.Handler {
	return h
}

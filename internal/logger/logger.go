package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tkapp/internal/paths"

	"github.com/lmittmann/tint"
)

// Custom log levels to match the legacy launcher output
const (
	LevelTrace  = slog.Level(-8)
	LevelDebug  = slog.LevelDebug
	LevelInfo   = slog.Level(-2)
	LevelNotice = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
	LevelFatal  = slog.Level(12)
)

// LevelVar allows dynamic changing of the log level
var LevelVar = new(slog.LevelVar)
var FileLevelVar = new(slog.LevelVar)

// logFile is the open application log file, closed by Cleanup.
var logFile *os.File

func init() {
	LevelVar.Set(LevelNotice)
	FileLevelVar.Set(LevelInfo) // Default file to Info (-v behavior)
}

func SetLevel(level slog.Level) {
	LevelVar.Set(level)
	// File level should be at least Info, or lower if Debug is requested
	if level < LevelInfo {
		FileLevelVar.Set(level)
	} else {
		FileLevelVar.Set(LevelInfo)
	}
}

// Helper to resolve message from any type to string
func resolveMsg(msg any) string {
	switch v := msg.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		var parts []string
		for _, item := range v {
			parts = append(parts, resolveMsg(item))
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}

// Internal helper to log, splitting multi-line messages into one record each
func log(ctx context.Context, level slog.Level, msg any, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	msgStr := resolveMsg(msg)
	// If it's a string (or resolved from a slice), we might need to format it with args.
	if len(args) > 0 && strings.Contains(msgStr, "%") {
		msgStr = fmt.Sprintf(msgStr, args...)
		args = nil // Reset args as they are now consumed
	}

	now := time.Now()
	if !strings.Contains(msgStr, "\n") {
		r := slog.NewRecord(now, level, msgStr, 0)
		r.Add(args...)
		_ = h.Handle(ctx, r)
		return
	}

	for i, line := range strings.Split(msgStr, "\n") {
		r := slog.NewRecord(now, level, line, 0)
		if i == 0 {
			r.Add(args...)
		}
		_ = h.Handle(ctx, r)
	}
}

// NewLogger builds the default logger: a colored console handler on stderr
// and a plain file handler writing the application log, fanned out together.
func NewLogger() *slog.Logger {
	wStderr := os.Stderr

	// Check if output is a terminal (TTY)
	stat, _ := wStderr.Stat()
	isTTY := (stat.Mode() & os.ModeCharDevice) != 0

	consoleOpts := &tint.Options{
		Level:       LevelVar,
		TimeFormat:  "2006-01-02 15:04:05",
		NoColor:     !isTTY,
		ReplaceAttr: levelNames(),
	}
	handlers := []slog.Handler{tint.NewHandler(wStderr, consoleOpts)}

	logFilePath := paths.GetLogFilePath()
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err == nil {
		wFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		} else {
			logFile = wFile
			fileOpts := &tint.Options{
				Level:       FileLevelVar,
				TimeFormat:  "2006-01-02 15:04:05",
				NoColor:     true,
				ReplaceAttr: levelNames(),
			}
			handlers = append(handlers, tint.NewHandler(wFile, fileOpts))
		}
	}

	return slog.New(&FanoutHandler{handlers: handlers})
}

// levelNames renders the custom levels with fixed-width bracketed labels.
func levelNames() func(groups []string, a slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			level := a.Value.Any().(slog.Level)
			switch level {
			case LevelTrace:
				a.Value = slog.StringValue("[TRACE ]")
			case LevelDebug:
				a.Value = slog.StringValue("[DEBUG ]")
			case LevelInfo:
				a.Value = slog.StringValue("[INFO  ]")
			case LevelNotice:
				a.Value = slog.StringValue("[NOTICE]")
			case LevelWarn:
				a.Value = slog.StringValue("[WARN  ]")
			case LevelError:
				a.Value = slog.StringValue("[ERROR ]")
			case LevelFatal:
				a.Value = slog.StringValue("[FATAL ]")
			default:
				a.Value = slog.StringValue("[" + level.String() + "]")
			}
		}
		return a
	}
}

// Cleanup closes the log file if one was opened.
func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// FanoutHandler broadcasts records to multiple handlers
type FanoutHandler struct {
	handlers []slog.Handler
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: newHandlers}
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &FanoutHandler{handlers: newHandlers}
}

// Global helpers for custom levels that don't satisfy standard slog methods
func Trace(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelTrace, msg, args...)
}

func Debug(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

func Notice(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelNotice, msg, args...)
}

func Warn(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelError, msg, args...)
}

// Fatal logs a message at FatalLevel and panics with FatalError so the main
// run loop can recover, clean up, and exit non-zero.
func Fatal(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelFatal, msg, args...)
	panic(FatalError{})
}

// FatalError is a special error used to panic from Fatal logger calls.
// This allows the main run loop to recover and perform cleanup before exiting.
type FatalError struct{}

package eosim

import (
	"context"
	"log/slog"
	"os"
)

// Logger is the structured logging sink used throughout the kernel:
// the run loop, the context façade, and the event bus all log through
// it rather than the standard library's log package directly,
// so a host application can route kernel diagnostics into whatever
// structured logging stack it already runs (slog, zap, logrus, ...).
//
// Every call takes a message and an even number of key-value pairs,
// matching the shape slog itself expects:
//
//	logger.Debug("plan fired", "plan_id", id, "time", t)
type Logger interface {
	// Debug logs per-callback tracing detail: plan fires, immediate
	// drains, subscriber dispatch. Expected to be silent in production.
	Debug(msg string, args ...any)

	// Info logs coarse lifecycle events: component Init, run loop
	// start/halt.
	Info(msg string, args ...any)

	// Warn logs conditions that do not violate a kernel invariant but
	// are worth an operator's attention, e.g. re-entrant publish depth
	// reaching the event bus's fixed threshold.
	Warn(msg string, args ...any)

	// Error logs a kernel invariant violation immediately before it is
	// returned to the caller as an error.
	Error(msg string, args ...any)
}

// noopLogger discards everything. It backs NewContext when the caller
// supplies no logger and no default is otherwise configured.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// slogLogger adapts a *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps an existing *slog.Logger as a kernel Logger. If
// l is nil, the default slog text handler over os.Stderr is used.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return &slogLogger{logger: l}
}

func (s *slogLogger) Debug(msg string, args ...any) {
	s.logger.Log(context.Background(), slog.LevelDebug, msg, args...)
}

func (s *slogLogger) Info(msg string, args ...any) {
	s.logger.Log(context.Background(), slog.LevelInfo, msg, args...)
}

func (s *slogLogger) Warn(msg string, args ...any) {
	s.logger.Log(context.Background(), slog.LevelWarn, msg, args...)
}

func (s *slogLogger) Error(msg string, args ...any) {
	s.logger.Log(context.Background(), slog.LevelError, msg, args...)
}

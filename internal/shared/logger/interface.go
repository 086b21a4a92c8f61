package logger

import (
	"io"
	"log/slog"
)

// Interface is the structured logger injected into application services.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

type slogLogger struct {
	logger *slog.Logger
	name   string
}

func NewLogger() Interface {
	return &slogLogger{
		logger: Get(),
	}
}

func NewLoggerWithSlog(slogLog *slog.Logger) Interface {
	return &slogLogger{
		logger: slogLog,
	}
}

// NewNopLogger discards everything; used by tests and library callers
// that do not want engine chatter.
func NewNopLogger() Interface {
	return &slogLogger{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, l.attrs(args)...)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, l.attrs(args)...)
}

func (l *slogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, l.attrs(args)...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, l.attrs(args)...)
}

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{
		logger: l.logger.With(args...),
		name:   l.name,
	}
}

// Named appends name to the component path, so services built from a
// named parent log as "parent.child". Only the full path is attached.
func (l *slogLogger) Named(name string) Interface {
	if l.name != "" {
		name = l.name + "." + name
	}
	return &slogLogger{
		logger: l.logger,
		name:   name,
	}
}

func (l *slogLogger) attrs(args []any) []any {
	if l.name == "" {
		return args
	}
	return append([]any{"logger", l.name}, args...)
}

func (l *slogLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, l.attrs(keysAndValues)...)
}

func (l *slogLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, l.attrs(keysAndValues)...)
}

func (l *slogLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, l.attrs(keysAndValues)...)
}

func (l *slogLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, l.attrs(keysAndValues)...)
}

package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"repoaccess/internal/shared/config"
)

var (
	mu          sync.Mutex
	Logger      *slog.Logger
	atomicLevel = new(slog.LevelVar)
)

// Init installs the process logger described by cfg.
func Init(cfg *config.LoggerConfig) error {
	atomicLevel.Set(ParseLevel(cfg.Level))

	var writer io.Writer
	switch strings.ToLower(cfg.OutputPath) {
	case "stderr", "":
		writer = os.Stderr
	case "stdout":
		writer = os.Stdout
	default:
		file, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
		if err != nil {
			return err
		}
		writer = file
	}

	// warn and error carry their source location; debug mode adds it everywhere
	showSourceLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.Debug {
		showSourceLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	}

	var base slog.Handler
	if cfg.Format == "json" {
		base = slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level:     atomicLevel,
			AddSource: false,
		})
	} else {
		base = newTintHandler(writer, atomicLevel)
	}

	mu.Lock()
	Logger = slog.New(NewConditionalSourceHandler(base, showSourceLevels...))
	slog.SetDefault(Logger)
	mu.Unlock()

	return nil
}

// ParseLevel maps a configured level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newTintHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		AddSource:  false,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func SetLevel(level slog.Level) {
	atomicLevel.Set(level)
}

func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if Logger == nil {
		atomicLevel.Set(slog.LevelInfo)
		Logger = slog.New(NewConditionalSourceHandler(newTintHandler(os.Stderr, atomicLevel), slog.LevelWarn, slog.LevelError))
	}
	return Logger
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}

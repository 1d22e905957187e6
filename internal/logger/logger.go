package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// ParseLevel reads a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "none", "off":
		return LevelNone, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger writes leveled JSON lines through zerolog. Safe for concurrent use.
type Logger struct {
	base   zerolog.Logger // no component field
	zl     zerolog.Logger
	closer io.Closer
	level  Level
	prefix string
}

// New returns a logger writing to w at the given level. A nil w discards.
func New(w io.Writer, level Level) *Logger {
	if w == nil {
		w = io.Discard
		level = LevelNone
	}
	base := zerolog.New(zerolog.SyncWriter(w)).
		Level(level.zerolog()).
		With().Timestamp().Logger()
	return &Logger{base: base, zl: base, level: level}
}

// Open appends to the file at path, creating its directory. An empty path
// or LevelNone returns a discarding logger.
func Open(path string, level Level) (*Logger, error) {
	if path == "" || level == LevelNone {
		return Discard(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := New(f, level)
	l.closer = f
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger { return New(nil, LevelNone) }

// WithPrefix returns a logger sharing l's sink whose lines carry a
// "component" field. Nested prefixes are joined with ':'.
func (l *Logger) WithPrefix(prefix string) *Logger {
	c := *l
	c.closer = nil
	if l.prefix != "" {
		c.prefix = l.prefix + ":" + prefix
	} else {
		c.prefix = prefix
	}
	c.zl = l.base.With().Str("component", c.prefix).Logger()
	return &c
}

// Enabled reports whether lines at level are written.
func (l *Logger) Enabled(level Level) bool {
	return l.level != LevelNone && level >= l.level
}

func (l *Logger) event(level Level) *zerolog.Event {
	if !l.Enabled(level) {
		return nil
	}
	return l.zl.WithLevel(level.zerolog())
}

func (l *Logger) logf(level Level, format string, args ...any) {
	l.event(level).Msgf(format, args...)
}

func (l *Logger) Debug(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.logf(LevelError, format, args...) }

// Close releases the log file, if this logger opened one.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

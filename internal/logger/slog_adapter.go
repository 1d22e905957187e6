package logger

import (
	"context"
	"log/slog"
	"strings"
)

// NewSlogHandler returns a slog.Handler that writes through l.
func NewSlogHandler(l *Logger) slog.Handler {
	return &slogHandler{log: l}
}

type slogHandler struct {
	log    *Logger
	attrs  []slog.Attr
	groups []string
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.log.Enabled(fromSlog(level))
}

func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	e := h.log.event(fromSlog(r.Level))
	if e == nil {
		return nil
	}
	key := func(k string) string {
		if len(h.groups) == 0 {
			return k
		}
		return strings.Join(h.groups, ".") + "." + k
	}
	add := func(a slog.Attr) {
		if a.Equal(slog.Attr{}) {
			return
		}
		e.Str(key(a.Key), a.Value.Resolve().String())
	}
	for _, a := range h.attrs {
		add(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		add(a)
		return true
	})
	e.Msg(r.Message)
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &c
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.groups = append(append([]string{}, h.groups...), name)
	return &c
}

func fromSlog(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	default:
		return LevelDebug
	}
}

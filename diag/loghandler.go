package diag

import (
	"context"
	"log/slog"
	"strings"
)

// LogHandler adapts an Emitter to log/slog. Each record becomes one
// progname-prefixed diagnostic line of the form
// "<name>: <level>: <msg> key=value ...\n", written through the emitter's
// usual single-write path. Programs that already report through the
// diagnostic stream can hang structured logging off the same channel without
// a second sink.
type LogHandler struct {
	emitter *Emitter
	level   slog.Leveler
	attrs   []slog.Attr // keys already group-qualified
	prefix  string      // group qualifier for subsequent keys, "" or "a.b."
}

// NewLogHandler returns a handler emitting through e at or above level.
// A nil level means slog.LevelInfo; a nil emitter means the process default.
func NewLogHandler(e *Emitter, level slog.Leveler) *LogHandler {
	if e == nil {
		e = &std
	}
	return &LogHandler{emitter: e, level: level}
}

// Enabled reports whether records at level pass the handler's threshold.
func (h *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.level != nil {
		min = h.level.Level()
	}
	return level >= min
}

// Handle renders the record and emits it as one diagnostic line.
func (h *LogHandler) Handle(_ context.Context, rec slog.Record) error {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(rec.Level.String()))
	sb.WriteString(": ")
	sb.WriteString(rec.Message)
	for _, a := range h.attrs {
		appendAttr(&sb, "", a)
	}
	rec.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.prefix, a)
		return true
	})

	// The line goes through a "{}" placeholder, so braces inside the
	// rendered text are not reinterpreted.
	h.emitter.Warn("{}", sb.String())
	return nil
}

// WithAttrs returns a handler that prepends attrs to every record.
func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}
	return &clone
}

// WithGroup returns a handler qualifying subsequent keys with name.
func (h *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}

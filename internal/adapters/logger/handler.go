// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// PrettyHandler is a slog.Handler producing human-readable, colored output.
// Timestamps are omitted: the output is read by a person at a terminal, not
// shipped to an aggregator.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   termenv.NewOutput(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
func (h *PrettyHandler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder

	sb.WriteString(h.levelTag(record.Level))
	sb.WriteString(" ")
	sb.WriteString(record.Message)

	writeAttr := func(attr slog.Attr) bool {
		key := attr.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		sb.WriteString(" ")
		sb.WriteString(h.out.String(key + "=" + attr.Value.String()).Faint().String())
		return true
	}
	for _, attr := range h.attrs {
		writeAttr(attr)
	}
	record.Attrs(writeAttr)

	sb.WriteString("\n")
	_, err := io.WriteString(h.out, sb.String())
	return err
}

// WithAttrs returns a handler with the given attributes added.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup returns a handler with the given group name applied.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		clone.group += "." + name
	} else {
		clone.group = name
	}
	return &clone
}

func (h *PrettyHandler) levelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return h.out.String("ERROR").Foreground(termenv.ANSIRed).Bold().String()
	case level >= slog.LevelWarn:
		return h.out.String("WARN").Foreground(termenv.ANSIYellow).Bold().String()
	case level >= slog.LevelInfo:
		return h.out.String("INFO").Foreground(termenv.ANSICyan).String()
	default:
		return h.out.String("DEBUG").Faint().String()
	}
}

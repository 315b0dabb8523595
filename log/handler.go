package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const termTimeFormat = "01-02|15:04:05.000"

// TerminalHandler renders records as aligned "LEVEL[time] msg key=val" lines,
// suitable for interactive stderr output.
type TerminalHandler struct {
	mu       sync.Mutex
	wr       io.Writer
	lvl      slog.Level
	useColor bool
	attrs    []slog.Attr
}

// NewTerminalHandlerWithLevel returns a handler that only emits records at or
// above the given level.
func NewTerminalHandlerWithLevel(wr io.Writer, lvl slog.Level, useColor bool) *TerminalHandler {
	return &TerminalHandler{
		wr:       wr,
		lvl:      lvl,
		useColor: useColor,
	}
}

func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lvl
}

func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var sb strings.Builder
	label := LevelAlignedString(r.Level)
	if h.useColor {
		if color := levelColor(r.Level); color != "" {
			label = fmt.Sprintf("\x1b[%sm%s\x1b[0m", color, label)
		}
	}
	fmt.Fprintf(&sb, "%s[%s] %s", label, r.Time.Format(termTimeFormat), r.Message)
	for _, attr := range h.attrs {
		writeAttr(&sb, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&sb, attr)
		return true
	})
	sb.WriteByte('\n')
	_, err := io.WriteString(h.wr, sb.String())
	return err
}

func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TerminalHandler{
		wr:       h.wr,
		lvl:      h.lvl,
		useColor: h.useColor,
		attrs:    append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	// groups are flattened; key prefixes are enough at this log volume
	return h
}

func writeAttr(sb *strings.Builder, attr slog.Attr) {
	v := attr.Value.Resolve()
	if v.Kind() == slog.KindTime {
		fmt.Fprintf(sb, " %s=%s", attr.Key, v.Time().Format(time.RFC3339))
		return
	}
	fmt.Fprintf(sb, " %s=%v", attr.Key, v.Any())
}

func levelColor(l slog.Level) string {
	switch {
	case l >= LevelCrit:
		return "35" // magenta
	case l >= LevelError:
		return "31" // red
	case l >= LevelWarn:
		return "33" // yellow
	case l >= LevelInfo:
		return "32" // green
	case l >= LevelDebug:
		return "36" // cyan
	default:
		return "34" // blue (trace)
	}
}

type discardHandler struct{}

// DiscardHandler returns a handler that drops every record. The root logger
// starts out discarding until InitLogger installs a real handler.
func DiscardHandler() slog.Handler {
	return discardHandler{}
}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

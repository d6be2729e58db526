package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type sourceHandler struct {
	handler slog.Handler
	minimum slog.Level
}

// NewSourceHandler wraps a handler so that records at or above minimum carry a
// source-location attribute. Lower-level records stay compact. The wrapped
// handler should be configured with AddSource: false.
func NewSourceHandler(handler slog.Handler, minimum slog.Level) slog.Handler {
	return &sourceHandler{handler: handler, minimum: minimum}
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minimum {
		// Skip this frame plus the slog internal frames above it
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		fs := runtime.CallersFrames(pcs[:])
		f, _ := fs.Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: f.Function,
				File:     f.File,
				Line:     f.Line,
			}),
		})
	}

	return h.handler.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{handler: h.handler.WithAttrs(attrs), minimum: h.minimum}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{handler: h.handler.WithGroup(name), minimum: h.minimum}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

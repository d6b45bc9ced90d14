package logging

import (
	"context"
	"log/slog"
)

// fanoutHandler writes each record to the console handler and the optional
// log file handler.
type fanoutHandler struct {
	handlers []slog.Handler
}

func newFanoutHandler(handlers ...slog.Handler) slog.Handler {
	var kept []slog.Handler
	for _, h := range handlers {
		if h != nil {
			kept = append(kept, h)
		}
	}
	switch len(kept) {
	case 0:
		return NoopHandler{}
	case 1:
		return kept[0]
	}
	return &fanoutHandler{handlers: kept}
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &fanoutHandler{handlers: mapHandlers(h.handlers, func(inner slog.Handler) slog.Handler {
		return inner.WithAttrs(attrs)
	})}
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	return &fanoutHandler{handlers: mapHandlers(h.handlers, func(inner slog.Handler) slog.Handler {
		return inner.WithGroup(name)
	})}
}

func mapHandlers(handlers []slog.Handler, fn func(slog.Handler) slog.Handler) []slog.Handler {
	next := make([]slog.Handler, len(handlers))
	for i, handler := range handlers {
		next[i] = fn(handler)
	}
	return next
}

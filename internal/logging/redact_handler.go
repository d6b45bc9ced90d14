package logging

import (
	"context"
	"log/slog"
	"strings"
)

// redactingHandler masks webhook URLs and registered secrets in the record
// message and in string or error attribute values before delegating.
type redactingHandler struct {
	next    slog.Handler
	secrets []string
}

func newRedactingHandler(next slog.Handler, secrets []string) slog.Handler {
	var kept []string
	for _, s := range secrets {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}
	return &redactingHandler{next: next, secrets: kept}
}

func (h *redactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *redactingHandler) Handle(ctx context.Context, record slog.Record) error {
	clean := slog.NewRecord(record.Time, record.Level, redactSecrets(record.Message, h.secrets), record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		clean.AddAttrs(h.redactAttr(attr))
		return true
	})
	return h.next.Handle(ctx, clean)
}

func (h *redactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		masked[i] = h.redactAttr(attr)
	}
	return &redactingHandler{next: h.next.WithAttrs(masked), secrets: h.secrets}
}

func (h *redactingHandler) WithGroup(name string) slog.Handler {
	return &redactingHandler{next: h.next.WithGroup(name), secrets: h.secrets}
}

func (h *redactingHandler) redactAttr(attr slog.Attr) slog.Attr {
	attr.Value = attr.Value.Resolve()
	switch attr.Value.Kind() {
	case slog.KindString:
		attr.Value = slog.StringValue(redactSecrets(attr.Value.String(), h.secrets))
	case slog.KindGroup:
		group := attr.Value.Group()
		masked := make([]slog.Attr, len(group))
		for i, inner := range group {
			masked[i] = h.redactAttr(inner)
		}
		attr.Value = slog.GroupValue(masked...)
	case slog.KindAny:
		switch v := attr.Value.Any().(type) {
		case error:
			attr.Value = slog.StringValue(redactSecrets(v.Error(), h.secrets))
		case []string:
			masked := make([]string, len(v))
			for i, s := range v {
				masked[i] = redactSecrets(s, h.secrets)
			}
			attr.Value = slog.AnyValue(masked)
		}
	}
	return attr
}

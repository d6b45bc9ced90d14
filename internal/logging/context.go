package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent is the structured logging key for component names.
	FieldComponent = "component"
	// FieldCorrelationID identifies one sabhook invocation across its log lines.
	FieldCorrelationID = "correlation_id"
	// FieldEventKind is the normalized SABnzbd notification type.
	FieldEventKind = "event_kind"
	// FieldAlert flags warnings that should stand out in structured logs.
	FieldAlert = "alert"
)

type contextKey string

const (
	correlationIDKey contextKey = "correlation_id"
	eventKindKey     contextKey = "event_kind"
)

// WithCorrelationID stores the invocation identifier on ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, strings.TrimSpace(id))
}

// CorrelationIDFromContext returns the invocation identifier if present.
func CorrelationIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, correlationIDKey)
}

// WithEventKind stores the notification type being handled on ctx.
func WithEventKind(ctx context.Context, kind string) context.Context {
	return context.WithValue(ctx, eventKindKey, strings.TrimSpace(kind))
}

// EventKindFromContext returns the notification type if present.
func EventKindFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, eventKindKey)
}

func stringFromContext(ctx context.Context, key contextKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	value, ok := ctx.Value(key).(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := CorrelationIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, id))
	}
	if kind, ok := EventKindFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldEventKind, kind))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}

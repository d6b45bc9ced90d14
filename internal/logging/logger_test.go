package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testWebhook = "https://discord.com/api/webhooks/123456/secret-token"

func newBufferLogger(t *testing.T, format string, level slog.Level, secrets ...string) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(level)
	var handler slog.Handler
	switch format {
	case "json":
		handler = newJSONHandler(&buf, lvl, false)
	default:
		handler = newPrettyHandler(&buf, lvl, false)
	}
	return slog.New(newRedactingHandler(handler, secrets)), &buf
}

func TestPrettyHandlerLayout(t *testing.T) {
	logger, buf := newBufferLogger(t, "console", slog.LevelInfo)
	logger = NewComponentLogger(logger, "deliver")
	logger.Info("webhook sent", slog.Int("status", 204), slog.String("body", "line one\nline two"))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two attribute lines, got %q", out)
	}
	if !strings.Contains(lines[0], "INFO [deliver] – webhook sent") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "    - status: 204" {
		t.Fatalf("unexpected status line %q", lines[1])
	}
	if lines[2] != `    - body: "line one\nline two"` {
		t.Fatalf("multi-line values should be quoted, got %q", lines[2])
	}
}

func TestPrettyHandlerRespectsLevel(t *testing.T) {
	logger, buf := newBufferLogger(t, "console", slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("info line leaked past warn level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "WARN – shown") {
		t.Fatalf("missing warn line: %q", buf.String())
	}
}

func TestPrettyHandlerGroupsFlatten(t *testing.T) {
	logger, buf := newBufferLogger(t, "console", slog.LevelInfo)
	logger.WithGroup("http").Info("request", slog.Int("status", 403))
	if !strings.Contains(buf.String(), "    - http.status: 403") {
		t.Fatalf("expected dotted group key, got %q", buf.String())
	}
}

func TestJSONHandlerKeys(t *testing.T) {
	logger, buf := newBufferLogger(t, "json", slog.LevelDebug)
	logger.Debug("formatting embed", slog.String(FieldEventKind, "complete"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode json line: %v", err)
	}
	for _, key := range []string{"ts", "level", "msg", FieldEventKind} {
		if _, ok := entry[key]; !ok {
			t.Fatalf("missing key %q in %v", key, entry)
		}
	}
	if entry["level"] != "debug" {
		t.Fatalf("level = %v, want debug", entry["level"])
	}
}

func TestRedactingHandlerMasksWebhook(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		t.Run(format, func(t *testing.T) {
			logger, buf := newBufferLogger(t, format, slog.LevelInfo, testWebhook)
			logger = logger.With(slog.String("configured", testWebhook))
			logger.Error("post "+testWebhook+" failed",
				Error(errors.New(`Post "`+testWebhook+`": connection refused`)),
				slog.Any("argv", []string{"sabhook", testWebhook}),
				slog.Group("req", slog.String("url", testWebhook)),
			)
			out := buf.String()
			if strings.Contains(out, "secret-token") {
				t.Fatalf("webhook leaked into log output: %q", out)
			}
			if !strings.Contains(out, WebhookPlaceholder) {
				t.Fatalf("expected placeholder in %q", out)
			}
		})
	}
}

func TestRedactingHandlerMasksRegisteredSecret(t *testing.T) {
	logger, buf := newBufferLogger(t, "console", slog.LevelInfo, "hunter2")
	logger.Info("token is hunter2")
	if strings.Contains(buf.String(), "hunter2") {
		t.Fatalf("secret leaked: %q", buf.String())
	}
}

func TestWithContextAddsFields(t *testing.T) {
	logger, buf := newBufferLogger(t, "console", slog.LevelInfo)
	ctx := WithEventKind(WithCorrelationID(context.Background(), "abc-123"), "failed")
	WithContext(ctx, logger).Info("handling event")

	out := buf.String()
	if !strings.Contains(out, "- correlation_id: abc-123") {
		t.Fatalf("missing correlation id: %q", out)
	}
	if !strings.Contains(out, "- event_kind: failed") {
		t.Fatalf("missing event kind: %q", out)
	}
}

func TestWithContextWithoutFields(t *testing.T) {
	base := NewNop()
	if got := WithContext(context.Background(), base); got != base {
		t.Fatal("expected the same logger back when context carries no fields")
	}
	if WithContext(context.Background(), nil) == nil {
		t.Fatal("expected a no-op logger for nil input")
	}
}

func TestNewWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sabhook.log")
	logger, err := New(Options{Level: "info", Format: "console", OutputPaths: []string{"stderr"}, FilePath: path, Secrets: []string{testWebhook}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("sending webhook", slog.String("url", testWebhook))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"sending webhook"`) {
		t.Fatalf("log file missing record: %q", data)
	}
	if strings.Contains(string(data), "secret-token") {
		t.Fatalf("webhook leaked into log file: %q", data)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("log file mode = %o, want 600", perm)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

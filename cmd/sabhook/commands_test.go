package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"sabhook/internal/embed"
)

func TestConfigInitAndValidate(t *testing.T) {
	base := isolateCLI(t)
	target := filepath.Join(base, "conf", "config.toml")

	out, _, err := runCLI(t, "config", "init", "--path", target)
	requireExit(t, err, exitOK)
	requireContains(t, out, "Wrote sample configuration")

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("sample config mode = %o, want 600", perm)
	}

	_, _, err = runCLI(t, "config", "init", "--path", target)
	if err == nil {
		t.Fatal("expected refusal to overwrite without --overwrite")
	}
	_, _, err = runCLI(t, "config", "init", "--path", target, "--overwrite")
	requireExit(t, err, exitOK)

	out, _, err = runCLI(t, "--config", target, "config", "validate")
	requireExit(t, err, exitOK)
	requireContains(t, out, "Config path: "+target)
	requireContains(t, out, "Webhook: not set")
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateReportsCRLF(t *testing.T) {
	base := isolateCLI(t)
	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, []byte("[discord]\r\nusername = \"Bot\"\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, "--config", path, "--webhook", "https://discord.com/api/webhooks/1/abc", "config", "validate")
	requireExit(t, err, exitOK)
	requireContains(t, out, "dos2unix")
	requireContains(t, out, "Webhook: length=38")
}

func TestPreviewJSON(t *testing.T) {
	isolateCLI(t)

	out, _, err := runCLI(t, "preview", "--json", "failed", "Broken.Release", "Status: Failed\nCRC error", "https://example.com/x.jpg")
	requireExit(t, err, exitOK)

	var payload embed.Payload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("preview output is not a payload: %v\n%s", err, out)
	}
	doc := payload.Embeds[0]
	if doc.Description != "CRC error" {
		t.Fatalf("description = %q", doc.Description)
	}
	if v, _ := doc.Field(embed.FieldDownloadStatus); v != "❌ Failed" {
		t.Fatalf("download status = %q", v)
	}
	if err := embed.Validate(payload); err != nil {
		t.Fatalf("preview payload fails schema: %v", err)
	}
}

func TestPreviewNeedsThreeArguments(t *testing.T) {
	isolateCLI(t)

	_, _, err := runCLI(t, "preview", "complete", "title")
	requireExit(t, err, exitInput)
}

func TestPreviewDoesNotNeedWebhook(t *testing.T) {
	isolateCLI(t)

	_, _, err := runCLI(t, "preview", "complete", "title", "message")
	requireExit(t, err, exitOK)
}

func TestPreviewRows(t *testing.T) {
	f := embed.NewFormatter(embed.DefaultBranding())
	payload := embed.NewPayload(f.Format("complete", "Title", "Body", []string{"https://example.com/t.png"}), "SABnzbd", "")
	rows := previewRows(payload)

	got := map[string]string{}
	for _, r := range rows {
		got[r[0]] = r[1]
	}
	if got["Color"] != "#2ECC71 (3066993)" {
		t.Fatalf("color row = %q", got["Color"])
	}
	if got[embed.FieldCategory] != "🟢 complete (inline)" {
		t.Fatalf("category row = %q", got[embed.FieldCategory])
	}
	if got["Thumbnail"] != "https://example.com/t.png" {
		t.Fatalf("thumbnail row = %q", got["Thumbnail"])
	}
}

func TestKindsJSON(t *testing.T) {
	isolateCLI(t)

	out, _, err := runCLI(t, "kinds", "--json")
	requireExit(t, err, exitOK)

	var views []kindView
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("decode kinds: %v\n%s", err, out)
	}
	if len(views) != 11 {
		t.Fatalf("expected 11 kinds, got %d", len(views))
	}
	first := views[0]
	if first.Kind != "download" || first.Label != "Added NZB" || first.Color != "#F39C12" || first.Circle != "🟠" {
		t.Fatalf("unexpected first kind %+v", first)
	}
}

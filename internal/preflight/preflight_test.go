package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sabhook/internal/config"
)

func writeFile(t *testing.T, name, content string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckLineEndings_LF(t *testing.T) {
	path := writeFile(t, "script.sh", "#!/bin/sh\nexec sabhook \"$@\"\n", 0o755)
	if result := CheckLineEndings("script", path); !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckLineEndings_CRLF(t *testing.T) {
	path := writeFile(t, "script.sh", "#!/bin/sh\r\nexec sabhook \"$@\"\r\n", 0o755)
	result := CheckLineEndings("script", path)
	if result.Passed {
		t.Fatal("expected failure for CRLF file")
	}
	if !strings.Contains(result.Detail, "dos2unix") {
		t.Fatalf("expected dos2unix advice, got %q", result.Detail)
	}
}

func TestCheckLineEndings_OnlyScansHead(t *testing.T) {
	content := strings.Repeat("a", headBytes) + "\r\n"
	path := writeFile(t, "big.toml", content, 0o644)
	if result := CheckLineEndings("config", path); !result.Passed {
		t.Fatalf("CRLF past the scanned head should be ignored, got %s", result.Detail)
	}
}

func TestCheckLineEndings_Missing(t *testing.T) {
	result := CheckLineEndings("script", filepath.Join(t.TempDir(), "nope"))
	if result.Passed || result.Detail == "" {
		t.Fatalf("expected failure with detail, got %+v", result)
	}
}

func TestCheckExecutable(t *testing.T) {
	exec := writeFile(t, "run.sh", "#!/bin/sh\n", 0o755)
	if result := CheckExecutable("script", exec); !result.Passed {
		t.Fatalf("expected pass, got %s", result.Detail)
	}
	plain := writeFile(t, "plain.sh", "#!/bin/sh\n", 0o644)
	if os.Geteuid() != 0 {
		if result := CheckExecutable("script", plain); result.Passed {
			t.Fatal("expected failure for non-executable file")
		}
	}
	if result := CheckExecutable("script", t.TempDir()); result.Passed {
		t.Fatal("expected failure for directory")
	}
}

func TestCheckWebhookURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		pass bool
	}{
		{"discord", "https://discord.com/api/webhooks/1/abc", true},
		{"legacy host", "https://discordapp.com/api/webhooks/1/abc", true},
		{"canary", "https://canary.discord.com/api/webhooks/1/abc", true},
		{"other host", "https://example.com/api/webhooks/1/abc", false},
		{"wrong path", "https://discord.com/channels/1/2", false},
		{"relative", "discord.com/api/webhooks/1/abc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckWebhookURL(tt.url)
			if result.Passed != tt.pass {
				t.Fatalf("CheckWebhookURL(%q) passed=%v, want %v (%s)", tt.url, result.Passed, tt.pass, result.Detail)
			}
			if strings.Contains(result.Detail, "abc") {
				t.Fatalf("detail leaks token: %q", result.Detail)
			}
		})
	}
}

func TestRunAll(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	confDir := filepath.Join(dir, "conf")
	if err := os.Mkdir(confDir, 0o755); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(confDir, "config.toml")
	if err := os.WriteFile(configPath, []byte("debug = false\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DISCORD_USERNAME=bot\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	script := filepath.Join(dir, "notify.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Discord.WebhookURL = "https://discord.com/api/webhooks/1/abc"

	results := RunAll(&cfg, configPath, script)
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	want := "Config file,Env file,Notification script,Notification script,Webhook URL"
	if got := strings.Join(names, ","); got != want {
		t.Fatalf("checks = %s, want %s", got, want)
	}

	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "Config file" {
		t.Fatalf("expected only the CRLF config to fail, got %+v", failed)
	}
}

func TestRunAllWithoutInputs(t *testing.T) {
	t.Chdir(t.TempDir())
	if results := RunAll(nil, "", ""); len(results) != 0 {
		t.Fatalf("expected no checks, got %+v", results)
	}
}

package preflight

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"sabhook/internal/config"
)

// headBytes bounds how much of a file is scanned for CRLF sequences.
const headBytes = 4096

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll checks the config file, any .env files beside it, the optional
// SABnzbd wrapper script, and the configured webhook URL.
func RunAll(cfg *config.Config, configPath, scriptPath string) []Result {
	var results []Result

	if configPath != "" && exists(configPath) {
		results = append(results, CheckLineEndings("Config file", configPath))
	}
	for _, envPath := range config.DotEnvCandidates(configPath) {
		if exists(envPath) {
			results = append(results, CheckLineEndings("Env file", envPath))
		}
	}
	if scriptPath = strings.TrimSpace(scriptPath); scriptPath != "" {
		results = append(results,
			CheckLineEndings("Notification script", scriptPath),
			CheckExecutable("Notification script", scriptPath),
		)
	}
	if cfg != nil && cfg.HasWebhook() {
		results = append(results, CheckWebhookURL(cfg.Discord.WebhookURL))
	}
	return results
}

// Failed filters results down to the checks that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}

// CheckLineEndings fails when the head of path contains Windows line
// endings. A CRLF shebang makes the kernel look for "interpreter\r".
func CheckLineEndings(name, path string) Result {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: open: %v)", path, err)}
	}
	defer file.Close()

	head := make([]byte, headBytes)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: read: %v)", path, err)}
	}
	if bytes.Contains(head[:n], []byte("\r\n")) {
		return Result{Name: name, Detail: fmt.Sprintf("%s has Windows (CRLF) line endings; run dos2unix on it", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (LF line endings)", path)}
}

// CheckExecutable fails when the current user cannot execute path, which
// SABnzbd requires of notification scripts.
func CheckExecutable(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not executable: %v); run chmod +x on it", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (executable)", path)}
}

// CheckWebhookURL fails when the webhook does not look like a Discord
// webhook endpoint. The URL itself is never echoed.
func CheckWebhookURL(raw string) Result {
	const name = "Webhook URL"
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" {
		return Result{Name: name, Detail: "not a valid absolute URL"}
	}
	host := strings.ToLower(parsed.Hostname())
	if host != "discord.com" && host != "discordapp.com" && !strings.HasSuffix(host, ".discord.com") {
		return Result{Name: name, Detail: fmt.Sprintf("host %s is not a Discord host", host)}
	}
	if !strings.HasPrefix(parsed.Path, "/api/webhooks/") {
		return Result{Name: name, Detail: "path is not /api/webhooks/<id>/<token>"}
	}
	return Result{Name: name, Passed: true, Detail: "Discord webhook"}
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

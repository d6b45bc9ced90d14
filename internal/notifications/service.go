package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"sabhook/internal/config"
	"sabhook/internal/embed"
	"sabhook/internal/logging"
)

// Discord drops requests from some default client agents, so a browser-like
// value is sent.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko)"

const maxErrorBody = 2048

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Request describes one notification to deliver.
type Request struct {
	WebhookURL string
	Username   string
	AvatarURL  string
	Embed      embed.Document
	DryRun     bool
}

// Deliverer posts embeds to a Discord webhook.
type Deliverer struct {
	doer    Doer
	timeout time.Duration
	logger  *slog.Logger
	dryRun  io.Writer
}

// Option customizes a Deliverer.
type Option func(*Deliverer)

// WithDoer replaces the HTTP transport.
func WithDoer(doer Doer) Option {
	return func(d *Deliverer) {
		if doer != nil {
			d.doer = doer
		}
	}
}

// WithDryRunWriter sets where dry-run payloads are printed. Defaults to stdout.
func WithDryRunWriter(w io.Writer) Option {
	return func(d *Deliverer) {
		if w != nil {
			d.dryRun = w
		}
	}
}

// NewDeliverer builds a Deliverer using the request timeout from cfg.
func NewDeliverer(cfg *config.Config, logger *slog.Logger, opts ...Option) *Deliverer {
	timeout := cfg.RequestTimeout()
	d := &Deliverer{
		doer:    &http.Client{Timeout: timeout},
		timeout: timeout,
		logger:  logging.NewComponentLogger(logger, "deliver"),
		dryRun:  os.Stdout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Deliver sends req once. It never retries and never returns an error;
// failures are reported through the Outcome.
func (d *Deliverer) Deliver(ctx context.Context, req Request) Outcome {
	logger := logging.WithContext(ctx, d.logger)
	payload := embed.NewPayload(req.Embed, strings.TrimSpace(req.Username), strings.TrimSpace(req.AvatarURL))

	if req.DryRun {
		return d.printDryRun(logger, payload)
	}

	webhook := strings.TrimSpace(req.WebhookURL)
	if webhook == "" {
		logger.Error("webhook delivery skipped", logging.Error(ErrNotConfigured))
		return Outcome{Kind: TransportFailure, Err: ErrNotConfigured}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("encode webhook payload", logging.Error(err))
		return Outcome{Kind: TransportFailure, Err: fmt.Errorf("encode payload: %w", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, webhook, bytes.NewReader(body))
	if err != nil {
		err = redact(fmt.Errorf("build webhook request: %w", err))
		logger.Error("webhook request invalid", logging.Error(err))
		return Outcome{Kind: TransportFailure, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)

	logger.Info("sending webhook",
		slog.String("webhook", logging.MaskedLen(webhook)),
		slog.String("title", req.Embed.Title),
		slog.Duration("timeout", d.timeout),
	)

	resp, err := d.doer.Do(httpReq)
	if err != nil {
		err = redact(fmt.Errorf("send webhook: %w", err))
		logger.Error("webhook transport failed", logging.Error(err))
		return Outcome{Kind: TransportFailure, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		text := ""
		if readErr == nil {
			text = strings.TrimSpace(string(data))
		}
		outcome := Outcome{Kind: Rejected, StatusCode: resp.StatusCode, Body: text}
		attrs := []any{slog.Int("status", resp.StatusCode), slog.String("body", text)}
		if hint := outcome.Hint(); hint != "" {
			attrs = append(attrs, logging.Alert(hint))
		}
		logger.Error("webhook rejected", attrs...)
		return outcome
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	logger.Info("webhook sent", slog.Int("status", resp.StatusCode))
	return Outcome{Kind: Sent, StatusCode: resp.StatusCode}
}

func (d *Deliverer) printDryRun(logger *slog.Logger, payload embed.Payload) Outcome {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		logger.Error("encode webhook payload", logging.Error(err))
		return Outcome{Kind: TransportFailure, Err: fmt.Errorf("encode payload: %w", err)}
	}
	if _, err := fmt.Fprintln(d.dryRun, string(data)); err != nil {
		logger.Warn("write dry-run payload", logging.Error(err))
	}
	if err := embed.Validate(payload); err != nil {
		logger.Warn("payload does not match webhook schema", logging.Error(err))
	}
	logger.Info("dry run; webhook not contacted")
	return Outcome{Kind: Sent}
}

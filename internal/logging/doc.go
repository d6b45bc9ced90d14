// Package logging assembles structured slog loggers for sabhook.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers that tag every line with the invocation's
// correlation ID and event kind. Diagnostics always go to stderr (and
// optionally a file); stdout is left to dry-run payload output.
//
// Every handler built here is wrapped so that Discord webhook URLs and other
// registered secrets are masked before a line is written. Prefer these
// constructors over hand-rolled slog setup so that guarantee holds.
package logging

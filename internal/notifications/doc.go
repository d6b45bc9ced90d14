// Package notifications posts formatted embeds to a Discord webhook.
//
// A Deliverer makes exactly one HTTP attempt per call and never returns an
// error: every result, including transport failures, is folded into an
// Outcome so the CLI can map it to an exit code. Dry runs print the payload
// instead of sending it.
package notifications

package notifications

import (
	"errors"
	"fmt"
	"net/http"

	"sabhook/internal/logging"
)

// OutcomeKind classifies a delivery attempt.
type OutcomeKind int

const (
	// Sent means the webhook answered with a 2xx status, or the run was dry.
	Sent OutcomeKind = iota
	// Rejected means the webhook answered with a non-2xx status.
	Rejected
	// TransportFailure means no HTTP response was obtained.
	TransportFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case Sent:
		return "sent"
	case Rejected:
		return "rejected"
	case TransportFailure:
		return "transport_failure"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// ForbiddenHint is shown to operators when Discord answers 403.
const ForbiddenHint = "Discord returned 403 Forbidden: the webhook is likely invalid or was deleted. " +
	"Create a new webhook in the channel's Integrations settings and update " +
	"discord.webhook_url or DISCORD_WEBHOOK_URL."

// Outcome is the result of one Deliver call.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Body       string
	Err        error
}

// OK reports whether the notification was accepted.
func (o Outcome) OK() bool {
	return o.Kind == Sent
}

// Hint returns operator advice for the outcome, or "" when there is none.
func (o Outcome) Hint() string {
	if o.Kind == Rejected && o.StatusCode == http.StatusForbidden {
		return ForbiddenHint
	}
	return ""
}

func (o Outcome) String() string {
	switch o.Kind {
	case Sent:
		if o.StatusCode == 0 {
			return "sent (dry run)"
		}
		return fmt.Sprintf("sent (HTTP %d)", o.StatusCode)
	case Rejected:
		return fmt.Sprintf("rejected (HTTP %d)", o.StatusCode)
	default:
		if o.Err != nil {
			return "transport failure: " + o.Err.Error()
		}
		return "transport failure"
	}
}

// redactedError hides webhook URLs in the message of a wrapped error while
// keeping the chain intact for errors.Is.
type redactedError struct {
	err error
}

func redact(err error) error {
	if err == nil {
		return nil
	}
	return &redactedError{err: err}
}

func (e *redactedError) Error() string { return logging.RedactURL(e.err.Error()) }

func (e *redactedError) Unwrap() error { return e.err }

// ErrNotConfigured reports a missing webhook URL.
var ErrNotConfigured = errors.New("discord webhook url is not configured")

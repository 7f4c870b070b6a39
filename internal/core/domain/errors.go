package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Every failure kind is
// terminal for the current extraction or submission cycle; nothing is
// retried automatically.
var (
	// ErrMissingCredential indicates no Anthropic API key is configured.
	// Raised before any network activity.
	ErrMissingCredential = errors.New("anthropic API key is required")

	// ErrUnsupportedPage indicates the target address uses a scheme the
	// tool cannot capture (anything other than http or https).
	ErrUnsupportedPage = errors.New("unsupported page")

	// ErrPageUnreachable indicates the page could not be fetched.
	ErrPageUnreachable = errors.New("page unreachable")

	// ErrMalformedResponse indicates the model output was not valid JSON.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrUnexpectedShape indicates the model output parsed as JSON but
	// was not an array of events.
	ErrUnexpectedShape = errors.New("expected an array of events")

	// ErrAuthFailed indicates the calendar bearer credential was absent
	// or rejected by the identity provider.
	ErrAuthFailed = errors.New("calendar authentication failed")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAPIKey indicates a credential that does not look like an
	// Anthropic API key. Keys must begin with "sk-ant-".
	ErrInvalidAPIKey = errors.New(`invalid API key format: Anthropic API keys start with "sk-ant-"`)
)

// UpstreamError carries the reason reported by an external service
// (the model API or the calendar API) for a non-success response.
type UpstreamError struct {
	// Service names the upstream, e.g. "anthropic" or "google calendar".
	Service string

	// Message is the upstream-reported reason when available, otherwise
	// the transport status text.
	Message string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Service, e.Message)
}

// IsUpstreamError reports whether err is (or wraps) an UpstreamError.
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

package maps

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gmaps/models"
)

// Sentinel errors classifying every failure the client can surface. Callers
// should use [errors.Is] to match against these values; the concrete error is
// always an [*Error] whose Unwrap returns one of the sentinels.
var (
	// ErrMissingCredential is returned when no usable credential combination
	// is configured for a request. Fatal: the caller must fix configuration.
	ErrMissingCredential = errors.New("missing credential")

	// ErrInvalidCredential is returned when the enterprise client secret is
	// not valid URL-safe base64 and cannot be used for signing.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrRedirect is returned on an unexpected HTTP redirect (301, 302, 303
	// or 307). The message carries the Location header value.
	ErrRedirect = errors.New("unexpected redirect")

	// ErrClient is returned for malformed or unauthorized requests
	// (HTTP 304, 400-499). Not retryable as-is.
	ErrClient = errors.New("client error")

	// ErrServer is returned for HTTP 500-599. Transient; a caller-side retry
	// policy may reasonably retry these.
	ErrServer = errors.New("server error")

	// ErrTransmission is returned for HTTP statuses outside every recognized
	// range, and for bodies that cannot be read as the expected wire format.
	ErrTransmission = errors.New("transmission error")

	// ErrRateLimited is returned when the API reports OVER_QUERY_LIMIT.
	// Retryable with backoff.
	ErrRateLimited = errors.New("rate limited")

	// ErrRequestDenied is returned when the API rejects the credential
	// (REQUEST_DENIED). Not retryable without fixing credentials.
	ErrRequestDenied = errors.New("request denied")

	// ErrInvalidRequest is returned when the API reports INVALID_REQUEST.
	// Not retryable without modifying the request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAPI is returned for API-level statuses not otherwise classified.
	ErrAPI = errors.New("api error")

	// ErrMalformedResponse is returned when the response body is not valid
	// JSON. Treated as a transmission-level failure.
	ErrMalformedResponse = errors.New("malformed response")
)

// Error is the concrete error type surfaced by the client. It pairs one of
// the package sentinels with the optional human-readable message extracted
// from the response and, where applicable, the original raw response for
// diagnostics.
type Error struct {
	kind     error
	message  string
	response *models.RawResponse
}

func newError(kind error, message string, resp *models.RawResponse) *Error {
	return &Error{kind: kind, message: message, response: resp}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.message == "" {
		return e.kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.kind.Error(), e.message)
}

// Unwrap returns the classification sentinel, enabling [errors.Is] matching.
func (e *Error) Unwrap() error {
	return e.kind
}

// Message returns the human-readable message extracted from the response
// body's error_message field (or from the status mapping), if any.
func (e *Error) Message() string {
	return e.message
}

// Response returns the raw HTTP response the error was classified from, or
// nil for errors raised before a response existed (credential failures).
func (e *Error) Response() *models.RawResponse {
	return e.response
}

package models

import "net/http"

// RawResponse captures everything the transport layer got back from the wire.
// It is attached to classified errors so callers can inspect the original
// HTTP status and headers when diagnosing failures.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Location returns the value of the Location header, if any. Populated on
// redirect responses.
func (r RawResponse) Location() string {
	if r.Header == nil {
		return ""
	}
	return r.Header.Get("Location")
}

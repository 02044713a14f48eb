package maps

import (
	"context"

	"github.com/MKhiriev/go-gmaps/models"
)

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/transport_mock.go -package=mock

// Transport performs the HTTP GET for a fully built request URL. The core
// pipeline has no transport opinion of its own: cancellation, timeouts and
// connection management all belong to the implementation. The default is a
// resty-backed transport; tests substitute a mock.
type Transport interface {
	// Get dispatches a GET to rawURL, tagging the request with requestID for
	// log correlation, and returns the raw status, headers and body. An error
	// is returned only for transport-level failures (DNS, connect, timeout);
	// non-2xx statuses are returned as a RawResponse for classification.
	Get(ctx context.Context, rawURL string, requestID string) (models.RawResponse, error)
}

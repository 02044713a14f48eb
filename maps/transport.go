package maps

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-gmaps/models"
	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-Id"

// restyTransport is the default [Transport], a thin wrapper around a
// resty.Client. Redirects are not followed: the 3xx response itself is
// returned so the status classifier can surface it as [ErrRedirect].
type restyTransport struct {
	client *resty.Client
}

func newRestyTransport(timeout time.Duration, userAgent string) *restyTransport {
	cli := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &restyTransport{client: cli}
}

// Get implements [Transport].
func (t *restyTransport) Get(ctx context.Context, rawURL string, requestID string) (models.RawResponse, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID).
		Get(rawURL)
	if err != nil {
		return models.RawResponse{}, fmt.Errorf("transport get: %w", err)
	}

	return models.RawResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

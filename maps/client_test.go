package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-gmaps/internal/mock"
	"github.com/MKhiriev/go-gmaps/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClient builds a key-authenticated client pointed at the test server.
func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	c, err := New(Config{
		Credentials:  Credentials{APIKey: "test-key"},
		BaseURL:      serverURL,
		RoadsBaseURL: serverURL,
	})
	require.NoError(t, err)
	return c
}

// ── New ──────────────────────────────────────────────────────────────────────

func TestNew_DefaultsApplied(t *testing.T) {
	c, err := New(Config{Credentials: Credentials{APIKey: "k"}})

	require.NoError(t, err)
	assert.Equal(t, "https://maps.googleapis.com", c.baseURL)
	assert.Equal(t, "https://roads.googleapis.com", c.roadsBaseURL)
	assert.NotNil(t, c.transport)
	assert.NotNil(t, c.logger)
}

func TestNew_MissingCredentials(t *testing.T) {
	_, err := New(Config{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestNew_IncompleteClientPair(t *testing.T) {
	// a client ID without its secret is not a usable credential
	_, err := New(Config{Credentials: Credentials{ClientID: "CID"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestNew_InvalidSecretFailsFast(t *testing.T) {
	_, err := New(Config{Credentials: Credentials{ClientID: "CID", ClientSecret: "###"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestNew_SchemelessBaseURLNormalized(t *testing.T) {
	c, err := New(Config{
		Credentials: Credentials{APIKey: "k"},
		BaseURL:     "maps.internal.example:8443/",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://maps.internal.example:8443", c.baseURL)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("GMAPS_API_KEY", "env-key")
	t.Setenv("GMAPS_TIMEOUT", "3s")

	c, err := NewFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "env-key", c.creds.APIKey)
}

func TestNewFromEnv_NoCredentials(t *testing.T) {
	t.Setenv("GMAPS_API_KEY", "")

	_, err := NewFromEnv()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCredential)
}

// ── Get pipeline (mocked transport) ──────────────────────────────────────────

func TestGet_DispatchesSignedURLToTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transport := mock.NewMockTransport(ctrl)
	transport.EXPECT().
		Get(gomock.Any(), "https://maps.googleapis.com/api/test?a=1&key=test-key", gomock.Not(gomock.Eq(""))).
		Return(models.RawResponse{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       []byte(`{"status":"OK","results":[]}`),
		}, nil)

	c, err := New(Config{
		Credentials: Credentials{APIKey: "test-key"},
		Transport:   transport,
	})
	require.NoError(t, err)

	payload, err := c.Get(context.Background(), Request{
		Path:            "/api/test",
		Params:          Map{"a": "1"},
		AcceptsClientID: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "OK", payload["status"])
}

func TestGet_CredentialErrorSkipsTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no transport expectation: the pipeline must fail before dispatch
	transport := mock.NewMockTransport(ctrl)

	c, err := New(Config{
		Credentials: Credentials{ClientID: "CID", ClientSecret: testSecret},
		Transport:   transport,
	})
	require.NoError(t, err)

	_, err = c.Get(context.Background(), Request{Path: "/v1/snapToRoads", AcceptsClientID: false})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestGet_CustomDecoder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transport := mock.NewMockTransport(ctrl)
	transport.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.RawResponse{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       []byte(`{"custom":"format"}`),
		}, nil)

	c, err := New(Config{
		Credentials: Credentials{APIKey: "k"},
		Transport:   transport,
	})
	require.NoError(t, err)

	decoded := false
	payload, err := c.Get(context.Background(), Request{
		Path: "/api/custom",
		Decode: func(resp models.RawResponse) (Payload, error) {
			decoded = true
			return Payload{"wrapped": string(resp.Body)}, nil
		},
	})

	require.NoError(t, err)
	assert.True(t, decoded)
	assert.Equal(t, `{"custom":"format"}`, payload["wrapped"])
}

func TestGet_TransportErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transport := mock.NewMockTransport(ctrl)
	transport.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.RawResponse{}, context.DeadlineExceeded)

	c, err := New(Config{
		Credentials: Credentials{APIKey: "k"},
		Transport:   transport,
	})
	require.NoError(t, err)

	_, err = c.Get(context.Background(), Request{Path: "/api/test"})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ── Get pipeline (real transport against httptest) ───────────────────────────

func TestGet_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "Sydney", r.URL.Query().Get("address"))
		assert.NotEmpty(t, r.Header.Get(requestIDHeader))
		assert.Contains(t, r.Header.Get("User-Agent"), "go-gmaps/")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","results":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	payload, err := c.Get(context.Background(), Request{
		Path:            "/maps/api/geocode/json",
		Params:          Map{"address": "Sydney"},
		AcceptsClientID: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "OK", payload["status"])
}

func TestGet_RedirectSurfacesAsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://elsewhere.example/", http.StatusFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Get(context.Background(), Request{Path: "/api/test"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRedirect)
	assert.Contains(t, err.Error(), "https://elsewhere.example/")
}

func TestGet_ServerErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Get(context.Background(), Request{Path: "/api/test"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
}

func TestGet_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Get(ctx, Request{Path: "/api/test"})

	require.Error(t, err)
}

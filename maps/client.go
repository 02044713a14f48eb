// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package maps

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-gmaps/internal/logger"
	"github.com/MKhiriev/go-gmaps/models"
	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Version identifies the client in the User-Agent header.
const Version = "0.3.0"

const (
	defaultBaseURL      = "https://maps.googleapis.com"
	defaultRoadsBaseURL = "https://roads.googleapis.com"
	defaultTimeout      = 15 * time.Second
)

// Config configures a [Client]. Zero fields are filled with defaults; only
// the credentials are mandatory. Fields tagged with `env` can be populated
// from the environment via [NewFromEnv].
type Config struct {
	Credentials

	// BaseURL hosts the standard API family. Defaults to the public host.
	BaseURL string `env:"GMAPS_BASE_URL"`

	// RoadsBaseURL hosts the Roads API, which lives on its own domain.
	RoadsBaseURL string `env:"GMAPS_ROADS_BASE_URL"`

	// Timeout bounds each HTTP call made by the default transport.
	Timeout time.Duration `env:"GMAPS_TIMEOUT"`

	// UserAgent overrides the identifying header sent with every request.
	UserAgent string `env:"GMAPS_USER_AGENT"`

	// Transport replaces the default resty-backed transport. Useful for
	// callers that need their own connection pooling, proxies or retries.
	Transport Transport `env:"-"`

	// Logger receives request-level debug logs. Nil disables logging.
	Logger *zerolog.Logger `env:"-"`
}

func defaultConfig() Config {
	return Config{
		BaseURL:      defaultBaseURL,
		RoadsBaseURL: defaultRoadsBaseURL,
		Timeout:      defaultTimeout,
		UserAgent:    "go-gmaps/" + Version,
	}
}

// Client is an authenticated client for the Maps web service family.
// Credentials are immutable after construction; the client is safe for
// concurrent use from any number of goroutines.
type Client struct {
	creds        Credentials
	baseURL      string
	roadsBaseURL string
	transport    Transport
	logger       *logger.Logger
}

// New constructs a [Client] from cfg, merging defaults into zero fields.
//
// It fails fast on configuration bugs: [ErrMissingCredential] when neither
// an API key nor a complete client ID/secret pair is present, and
// [ErrInvalidCredential] when a supplied client secret is not decodable
// URL-safe base64.
func New(cfg Config) (*Client, error) {
	if err := mergo.Merge(&cfg, defaultConfig()); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	if cfg.Credentials.empty() {
		return nil, newError(ErrMissingCredential,
			"configure an API key or a client ID/secret pair", nil)
	}
	if cfg.ClientSecret != "" {
		if _, err := decodeSecret(cfg.ClientSecret); err != nil {
			return nil, err
		}
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	roadsBaseURL, err := normalizeBaseURL(cfg.RoadsBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid roads base url: %w", err)
	}

	transport := cfg.Transport
	if transport == nil {
		transport = newRestyTransport(cfg.Timeout, cfg.UserAgent)
	}

	lg := logger.Nop()
	if cfg.Logger != nil {
		lg = logger.FromZerolog(*cfg.Logger)
	}

	return &Client{
		creds:        cfg.Credentials,
		baseURL:      baseURL,
		roadsBaseURL: roadsBaseURL,
		transport:    transport,
		logger:       lg,
	}, nil
}

// NewFromEnv constructs a [Client] from GMAPS_* environment variables. The
// core client itself never reads the environment; this helper exists for
// callers that want to opt in to env-based configuration.
func NewFromEnv() (*Client, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return New(cfg)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Get runs the full request pipeline for req and returns the decoded payload:
// canonicalize params, sign or key the path, dispatch the GET, classify the
// HTTP status, and decode the API-level status envelope (or req.Decode when
// set). All failures unwrap to the sentinels in errors.go.
func (c *Client) Get(ctx context.Context, req Request) (Payload, error) {
	raw, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	decode := req.Decode
	if decode == nil {
		decode = decodeResponse
	}

	payload, err := decode(raw)
	if err != nil {
		c.logger.Warn().Str("path", req.Path).Err(err).Msg("maps api response rejected")
		return nil, err
	}

	return payload, nil
}

// do builds the authenticated URL and performs the GET, returning the raw
// response for decoding.
func (c *Client) do(ctx context.Context, req Request) (models.RawResponse, error) {
	signedPath, err := buildRequestURL(req.Path, req.Params, req.AcceptsClientID, c.creds)
	if err != nil {
		return models.RawResponse{}, err
	}

	base := req.BaseURL
	if base == "" {
		base = c.baseURL
	}

	requestID := uuid.NewString()
	start := time.Now()

	raw, err := c.transport.Get(ctx, base+signedPath, requestID)
	if err != nil {
		c.logger.Warn().
			Str("path", req.Path).
			Str("request_id", requestID).
			Err(err).
			Msg("maps api request failed")
		return models.RawResponse{}, fmt.Errorf("maps api get %s: %w", req.Path, err)
	}

	c.logger.Debug().
		Str("path", req.Path).
		Str("request_id", requestID).
		Str("auth", c.authMode(req.AcceptsClientID)).
		Int("status", raw.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("maps api request")

	return raw, nil
}

func (c *Client) authMode(acceptsClientID bool) string {
	if acceptsClientID && c.creds.hasSignedPair() {
		return "client"
	}
	return "key"
}

// getJSON runs the pipeline and unmarshals the validated body into out.
// Endpoint methods on the standard API family go through here.
func (c *Client) getJSON(ctx context.Context, req Request, out any) error {
	raw, err := c.do(ctx, req)
	if err != nil {
		return err
	}

	if err = decodeInto(raw, out); err != nil {
		c.logger.Warn().Str("path", req.Path).Err(err).Msg("maps api response rejected")
		return err
	}
	return nil
}

// getRoadsJSON is getJSON for the Roads API: key-only auth, the roads host,
// and the google.rpc error envelope.
func (c *Client) getRoadsJSON(ctx context.Context, req Request, out any) error {
	req.BaseURL = c.roadsBaseURL
	req.AcceptsClientID = false

	raw, err := c.do(ctx, req)
	if err != nil {
		return err
	}

	if err = decodeRoadsInto(raw, out); err != nil {
		c.logger.Warn().Str("path", req.Path).Err(err).Msg("roads api response rejected")
		return err
	}
	return nil
}

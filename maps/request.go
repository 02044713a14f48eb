package maps

import "github.com/MKhiriev/go-gmaps/models"

// Credentials authenticates requests. At least one of APIKey or the
// ClientID/ClientSecret pair must be set. When both modes are configured and
// an endpoint accepts enterprise client IDs, signed mode takes precedence.
// Immutable after the client is constructed.
type Credentials struct {
	// APIKey is a standard API key, appended as the "key" query parameter.
	APIKey string `env:"GMAPS_API_KEY"`

	// ClientID and ClientSecret are enterprise credentials. The client ID is
	// appended as the "client" query parameter and the secret (URL-safe
	// base64) keys the HMAC-SHA1 URL signature.
	ClientID     string `env:"GMAPS_CLIENT_ID"`
	ClientSecret string `env:"GMAPS_CLIENT_SECRET"`
}

func (c Credentials) hasSignedPair() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

func (c Credentials) empty() bool {
	return c.APIKey == "" && !c.hasSignedPair()
}

// Request describes a single API call. Immutable once built; endpoint
// methods construct one per call and discard it afterwards.
type Request struct {
	// Path is the URL path of the endpoint, e.g. "/maps/api/geocode/json".
	Path string

	// Params are the query parameters, either a [Map] (sorted on encode) or
	// [Pairs] (order preserved).
	Params Params

	// BaseURL overrides the client's default base URL when non-empty. Used
	// by the Roads API, which lives on its own host.
	BaseURL string

	// AcceptsClientID reports whether the endpoint accepts enterprise client
	// ID authentication. When false, only API-key auth is attempted.
	AcceptsClientID bool

	// Decode overrides the default response decoder for endpoints whose wire
	// format deviates from the standard status envelope.
	Decode DecodeFunc
}

// buildRequestURL assembles the signed (or keyed) path-and-query for a
// request. The caller prefixes the base URL before dispatching.
//
// Signed mode is chosen when the endpoint accepts client IDs and both halves
// of the enterprise pair are present: the "client" parameter is appended to
// the canonical parameter list, the path-with-query is signed, and the
// signature is appended last. Otherwise the API key is appended as "key".
// With no usable credential the request cannot be authenticated.
func buildRequestURL(path string, params Params, acceptsClientID bool, creds Credentials) (string, error) {
	ordered := canonicalPairs(params)

	if acceptsClientID && creds.hasSignedPair() {
		ordered = append(ordered, Pair{Key: "client", Value: creds.ClientID})
		pathWithQuery := path + "?" + encodePairs(ordered)

		signature, err := signPath(creds.ClientSecret, pathWithQuery)
		if err != nil {
			return "", err
		}
		return pathWithQuery + "&signature=" + signature, nil
	}

	if creds.APIKey != "" {
		ordered = append(ordered, Pair{Key: "key", Value: creds.APIKey})
		return path + "?" + encodePairs(ordered), nil
	}

	return "", newError(ErrMissingCredential,
		"must provide an API key; enterprise credentials not accepted for this endpoint", nil)
}

// DecodeFunc turns a raw response into a decoded payload or a classified
// error. The default is [decodeResponse]; the Roads API supplies its own.
type DecodeFunc func(models.RawResponse) (Payload, error)

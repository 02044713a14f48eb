package maps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequestURL_KeyedMode(t *testing.T) {
	creds := Credentials{APIKey: "AIza-test"}

	got, err := buildRequestURL("/api/test", Map{"b": "2", "a": "1"}, true, creds)

	require.NoError(t, err)
	assert.Equal(t, "/api/test?a=1&b=2&key=AIza-test", got)
}

func TestBuildRequestURL_SignedMode(t *testing.T) {
	creds := Credentials{ClientID: "CID", ClientSecret: testSecret}

	got, err := buildRequestURL("/api/test", nil, true, creds)

	require.NoError(t, err)
	// the signature covers "/api/test?client=CID"
	assert.Equal(t, "/api/test?client=CID&signature=51_m3Mk0Vt0ruBNnzklAxlXLX-M=", got)
}

func TestBuildRequestURL_SignedModeWithParams(t *testing.T) {
	creds := Credentials{ClientID: "gme-demo", ClientSecret: "dGVzdF9zZWNyZXQ="}

	got, err := buildRequestURL("/maps/api/geocode/json", Map{"address": "Sydney"}, true, creds)

	require.NoError(t, err)
	assert.Equal(t,
		"/maps/api/geocode/json?address=Sydney&client=gme-demo&signature=BEVZaCEub7Us3pL7zsF8PwdQbRM=",
		got)
}

// Given both a valid key and a valid client pair, signed mode wins on
// endpoints that accept client IDs.
func TestBuildRequestURL_SignedModeTakesPrecedence(t *testing.T) {
	creds := Credentials{
		APIKey:       "AIza-test",
		ClientID:     "CID",
		ClientSecret: testSecret,
	}

	got, err := buildRequestURL("/api/test", Map{"a": "1"}, true, creds)

	require.NoError(t, err)
	assert.Contains(t, got, "client=CID")
	assert.Contains(t, got, "&signature=")
	assert.NotContains(t, got, "key=")
}

func TestBuildRequestURL_KeyOnlyEndpointIgnoresClientPair(t *testing.T) {
	creds := Credentials{
		APIKey:       "AIza-test",
		ClientID:     "CID",
		ClientSecret: testSecret,
	}

	got, err := buildRequestURL("/v1/snapToRoads", Map{"path": "1,2"}, false, creds)

	require.NoError(t, err)
	assert.Contains(t, got, "key=AIza-test")
	assert.NotContains(t, got, "client=")
	assert.NotContains(t, got, "signature=")
}

func TestBuildRequestURL_KeyOnlyEndpointWithoutKey(t *testing.T) {
	creds := Credentials{ClientID: "CID", ClientSecret: testSecret}

	_, err := buildRequestURL("/v1/snapToRoads", nil, false, creds)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.Contains(t, err.Error(), "enterprise credentials not accepted")
}

func TestBuildRequestURL_NoCredentials(t *testing.T) {
	_, err := buildRequestURL("/api/test", Map{"a": "1"}, true, Credentials{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestBuildRequestURL_InvalidSecretSurfaces(t *testing.T) {
	creds := Credentials{ClientID: "CID", ClientSecret: "%%%broken%%%"}

	_, err := buildRequestURL("/api/test", nil, true, creds)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestBuildRequestURL_PairsKeepOrder(t *testing.T) {
	creds := Credentials{APIKey: "K"}
	params := Pairs{
		{Key: "path", Value: "1,2"},
		{Key: "interpolate", Value: "true"},
	}

	got, err := buildRequestURL("/v1/snapToRoads", params, false, creds)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "/v1/snapToRoads?path=1%2C2&interpolate=true&key=K"), got)
}

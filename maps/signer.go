// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package maps

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
)

// decodeSecret decodes a URL-safe base64 enterprise client secret into raw
// HMAC key bytes. Padded input is tried first; enterprise secrets are issued
// without padding, so the raw alphabet is accepted as a fallback. Failure of
// both means the secret is corrupt and signing is impossible.
func decodeSecret(secret string) ([]byte, error) {
	key, err := base64.URLEncoding.DecodeString(secret)
	if err == nil {
		return key, nil
	}

	key, rawErr := base64.RawURLEncoding.DecodeString(secret)
	if rawErr == nil {
		return key, nil
	}

	return nil, newError(ErrInvalidCredential, "client secret is not url-safe base64: "+err.Error(), nil)
}

// signPath computes the URL signature for pathWithQuery: an HMAC-SHA1 digest
// over its ASCII bytes keyed with the decoded secret, encoded as URL-safe
// base64 with padding to match what the verifying servers expect.
// Pure and deterministic.
func signPath(secret, pathWithQuery string) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha1.New, key)
	mac.Write([]byte(pathWithQuery))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil)), nil
}

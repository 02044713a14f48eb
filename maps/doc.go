// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package maps is an authenticated HTTP client for the Google Maps web
// service family (geocoding, directions, distance matrix, elevation, roads,
// time zone).
//
// The package is built around a shared request pipeline: query parameters are
// canonicalized into a deterministic percent-encoded string, the request path
// is authenticated either with an API key or an enterprise client ID plus
// HMAC-SHA1 URL signature, the HTTP status of the response is mapped onto the
// sentinel error taxonomy in errors.go, and the JSON body's API-level
// "status" field is decoded into either a payload or a typed error.
//
// Errors carry the original raw response and unwrap to the package sentinels,
// so callers can pick per-kind retry policies via [errors.Is]:
//
//	routes, err := client.Directions(ctx, req)
//	if errors.Is(err, maps.ErrRateLimited) || errors.Is(err, maps.ErrServer) {
//	    // transient; retry with backoff
//	}
//
// The client performs no retries, caching, or rate limiting of its own.
package maps

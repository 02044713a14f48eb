package maps

import (
	"context"
	"sort"
	"strings"

	"github.com/MKhiriev/go-gmaps/models"
)

const geocodePath = "/maps/api/geocode/json"

// GeocodeRequest holds the filters for a forward geocoding lookup. At least
// one of Address or Components must be set.
type GeocodeRequest struct {
	// Address is the street address to geocode.
	Address string

	// Components restricts results to those matching the given component
	// filters, e.g. {"country": "UK", "locality": "London"}.
	Components map[string]string

	// Bounds biases results towards the given viewport.
	Bounds *models.Bounds

	// Region biases results towards the given ccTLD region code.
	Region string

	// Language is the preferred language for the formatted results.
	Language string
}

// Geocode resolves an address into geographic coordinates and structured
// address data. A ZERO_RESULTS answer returns an empty slice and no error.
func (c *Client) Geocode(ctx context.Context, req GeocodeRequest) ([]models.GeocodingResult, error) {
	params := Map{}
	if req.Address != "" {
		params["address"] = req.Address
	}
	if len(req.Components) > 0 {
		params["components"] = joinComponents(req.Components)
	}
	if req.Bounds != nil {
		params["bounds"] = req.Bounds.String()
	}
	if req.Region != "" {
		params["region"] = req.Region
	}
	if req.Language != "" {
		params["language"] = req.Language
	}

	var out struct {
		Results []models.GeocodingResult `json:"results"`
	}
	if err := c.getJSON(ctx, Request{Path: geocodePath, Params: params, AcceptsClientID: true}, &out); err != nil {
		return nil, err
	}

	return out.Results, nil
}

// ReverseGeocodeRequest holds the filters for a reverse geocoding lookup.
// Exactly one of LatLng or PlaceID must be set.
type ReverseGeocodeRequest struct {
	LatLng  *models.LatLng
	PlaceID string

	// ResultTypes restricts results to the given address types.
	ResultTypes []string

	// LocationTypes restricts results to the given location precisions
	// (e.g. "ROOFTOP").
	LocationTypes []string

	Language string
}

// ReverseGeocode resolves a coordinate (or place ID) into the addresses that
// describe it.
func (c *Client) ReverseGeocode(ctx context.Context, req ReverseGeocodeRequest) ([]models.GeocodingResult, error) {
	params := Map{}
	if req.LatLng != nil {
		params["latlng"] = req.LatLng.String()
	}
	if req.PlaceID != "" {
		params["place_id"] = req.PlaceID
	}
	if len(req.ResultTypes) > 0 {
		params["result_type"] = strings.Join(req.ResultTypes, "|")
	}
	if len(req.LocationTypes) > 0 {
		params["location_type"] = strings.Join(req.LocationTypes, "|")
	}
	if req.Language != "" {
		params["language"] = req.Language
	}

	var out struct {
		Results []models.GeocodingResult `json:"results"`
	}
	if err := c.getJSON(ctx, Request{Path: geocodePath, Params: params, AcceptsClientID: true}, &out); err != nil {
		return nil, err
	}

	return out.Results, nil
}

// joinComponents renders a component filter map as "key:value" pairs joined
// by "|", sorted by key so the rendered value is deterministic.
func joinComponents(components map[string]string) string {
	keys := make([]string, 0, len(components))
	for k := range components {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rendered := make([]string, 0, len(components))
	for _, k := range keys {
		rendered = append(rendered, k+":"+components[k])
	}
	return strings.Join(rendered, "|")
}

package maps

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-gmaps/models"
)

const distanceMatrixPath = "/maps/api/distancematrix/json"

// DistanceMatrixRequest describes a travel distance/duration query for every
// origin-destination pairing. Origins and Destinations are required.
type DistanceMatrixRequest struct {
	// Origins and Destinations accept addresses, "lat,lng" pairs or
	// "place_id:..." references.
	Origins      []string
	Destinations []string

	Mode     string
	Language string
	Units    string

	// Avoid lists route features to avoid, as in [DirectionsRequest].
	Avoid []string

	// DepartureTime is a Unix timestamp, or "now".
	DepartureTime string
}

// DistanceMatrix computes travel distance and duration for every pairing of
// the given origins and destinations. Rows follow origin order; elements
// within a row follow destination order.
func (c *Client) DistanceMatrix(ctx context.Context, req DistanceMatrixRequest) (*models.DistanceMatrixResponse, error) {
	params := Map{
		"origins":      strings.Join(req.Origins, "|"),
		"destinations": strings.Join(req.Destinations, "|"),
	}
	if req.Mode != "" {
		params["mode"] = req.Mode
	}
	if req.Language != "" {
		params["language"] = req.Language
	}
	if req.Units != "" {
		params["units"] = req.Units
	}
	if len(req.Avoid) > 0 {
		params["avoid"] = strings.Join(req.Avoid, "|")
	}
	if req.DepartureTime != "" {
		params["departure_time"] = req.DepartureTime
	}

	var out models.DistanceMatrixResponse
	if err := c.getJSON(ctx, Request{Path: distanceMatrixPath, Params: params, AcceptsClientID: true}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

package maps

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-gmaps/models"
)

const directionsPath = "/maps/api/directions/json"

// DirectionsRequest describes a routing query between two locations.
// Origin and Destination are required; every other field is optional.
type DirectionsRequest struct {
	// Origin and Destination accept an address, a "lat,lng" pair or a
	// "place_id:..." reference.
	Origin      string
	Destination string

	// Mode is the travel mode: "driving" (default), "walking", "bicycling"
	// or "transit".
	Mode string

	// Waypoints routes the journey through the given intermediate points.
	Waypoints []string

	// Alternatives requests more than one route when available.
	Alternatives bool

	// Avoid lists route features to avoid: "tolls", "highways", "ferries".
	Avoid []string

	// Units selects the unit system of the human-readable distance fields.
	Units string

	Region   string
	Language string

	// DepartureTime is a Unix timestamp, or "now". Enables
	// duration_in_traffic on driving routes.
	DepartureTime string

	// ArrivalTime is a Unix timestamp. Transit only; mutually exclusive with
	// DepartureTime.
	ArrivalTime string

	// TrafficModel picks the traffic assumption used with DepartureTime:
	// "best_guess", "optimistic" or "pessimistic".
	TrafficModel string
}

// Directions computes routes between an origin and a destination. The first
// route is the recommended one; more follow when Alternatives is set.
func (c *Client) Directions(ctx context.Context, req DirectionsRequest) ([]models.Route, error) {
	params := Map{
		"origin":      req.Origin,
		"destination": req.Destination,
	}
	if req.Mode != "" {
		params["mode"] = req.Mode
	}
	if len(req.Waypoints) > 0 {
		params["waypoints"] = strings.Join(req.Waypoints, "|")
	}
	if req.Alternatives {
		params["alternatives"] = "true"
	}
	if len(req.Avoid) > 0 {
		params["avoid"] = strings.Join(req.Avoid, "|")
	}
	if req.Units != "" {
		params["units"] = req.Units
	}
	if req.Region != "" {
		params["region"] = req.Region
	}
	if req.Language != "" {
		params["language"] = req.Language
	}
	if req.DepartureTime != "" {
		params["departure_time"] = req.DepartureTime
	}
	if req.ArrivalTime != "" {
		params["arrival_time"] = req.ArrivalTime
	}
	if req.TrafficModel != "" {
		params["traffic_model"] = req.TrafficModel
	}

	var out struct {
		Routes []models.Route `json:"routes"`
	}
	if err := c.getJSON(ctx, Request{Path: directionsPath, Params: params, AcceptsClientID: true}, &out); err != nil {
		return nil, err
	}

	return out.Routes, nil
}

// UnixTime renders a time-like parameter value for DepartureTime and
// ArrivalTime from a Unix timestamp.
func UnixTime(ts int64) string {
	return strconv.FormatInt(ts, 10)
}

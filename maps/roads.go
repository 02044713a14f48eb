package maps

import (
	"context"

	"github.com/MKhiriev/go-gmaps/models"
)

const (
	snapToRoadsPath = "/v1/snapToRoads"
	speedLimitsPath = "/v1/speedLimits"
)

// Roads API endpoints live on their own host, authenticate with an API key
// only (enterprise client IDs are rejected), and report failures in the
// google.rpc error format rather than the standard status envelope. The
// helpers below route through getRoadsJSON, which accounts for all three.

// SnapToRoads snaps the given GPS path to the road network. With interpolate
// set, the result also includes points inserted along the road geometry
// between the input points; their OriginalIndex is nil.
func (c *Client) SnapToRoads(ctx context.Context, path []models.LatLng, interpolate bool) ([]models.SnappedPoint, error) {
	params := Map{"path": models.JoinLatLngs(path)}
	if interpolate {
		params["interpolate"] = "true"
	}

	var out struct {
		SnappedPoints []models.SnappedPoint `json:"snappedPoints"`
	}
	if err := c.getRoadsJSON(ctx, Request{Path: snapToRoadsPath, Params: params}, &out); err != nil {
		return nil, err
	}

	return out.SnappedPoints, nil
}

// SpeedLimits returns the posted speed limit for each of the given road
// segments. The placeId parameter repeats per segment, so the parameters are
// built as an ordered list rather than a map.
func (c *Client) SpeedLimits(ctx context.Context, placeIDs []string) (*models.SpeedLimitsResponse, error) {
	params := make(Pairs, 0, len(placeIDs))
	for _, id := range placeIDs {
		params = append(params, Pair{Key: "placeId", Value: id})
	}

	var out models.SpeedLimitsResponse
	if err := c.getRoadsJSON(ctx, Request{Path: speedLimitsPath, Params: params}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

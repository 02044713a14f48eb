package maps

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-gmaps/models"
)

const elevationPath = "/maps/api/elevation/json"

// Elevation returns the elevation of each given location, in metres relative
// to mean sea level.
func (c *Client) Elevation(ctx context.Context, locations []models.LatLng) ([]models.ElevationResult, error) {
	params := Map{"locations": models.JoinLatLngs(locations)}

	var out struct {
		Results []models.ElevationResult `json:"results"`
	}
	if err := c.getJSON(ctx, Request{Path: elevationPath, Params: params, AcceptsClientID: true}, &out); err != nil {
		return nil, err
	}

	return out.Results, nil
}

// ElevationAlongPath samples elevation at `samples` evenly spaced points
// along the path described by the given vertices, endpoints included.
func (c *Client) ElevationAlongPath(ctx context.Context, path []models.LatLng, samples int) ([]models.ElevationResult, error) {
	params := Map{
		"path":    models.JoinLatLngs(path),
		"samples": strconv.Itoa(samples),
	}

	var out struct {
		Results []models.ElevationResult `json:"results"`
	}
	if err := c.getJSON(ctx, Request{Path: elevationPath, Params: params, AcceptsClientID: true}, &out); err != nil {
		return nil, err
	}

	return out.Results, nil
}

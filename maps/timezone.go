package maps

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/go-gmaps/models"
)

const timezonePath = "/maps/api/timezone/json"

// TimeZone returns the time zone in effect at location at the given moment.
// The timestamp matters: the DST component of the answer depends on it.
func (c *Client) TimeZone(ctx context.Context, location models.LatLng, at time.Time, language string) (*models.TimezoneResult, error) {
	params := Map{
		"location":  location.String(),
		"timestamp": strconv.FormatInt(at.Unix(), 10),
	}
	if language != "" {
		params["language"] = language
	}

	var out models.TimezoneResult
	if err := c.getJSON(ctx, Request{Path: timezonePath, Params: params, AcceptsClientID: true}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the coordinate in the "lat,lng" form the web APIs accept as
// a query parameter value.
func (l LatLng) String() string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lng, 'f', -1, 64)
}

// ParseLatLng parses a "lat,lng" string into a LatLng.
func ParseLatLng(s string) (LatLng, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return LatLng{}, fmt.Errorf("invalid lat,lng value: %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("invalid latitude in %q: %w", s, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("invalid longitude in %q: %w", s, err)
	}

	return LatLng{Lat: lat, Lng: lng}, nil
}

// JoinLatLngs renders a sequence of coordinates joined by "|", the list
// separator used by the elevation, roads and distance matrix endpoints.
func JoinLatLngs(points []LatLng) string {
	rendered := make([]string, len(points))
	for i, p := range points {
		rendered[i] = p.String()
	}
	return strings.Join(rendered, "|")
}

// Bounds is a lat/lng viewport defined by its north-east and south-west
// corners.
type Bounds struct {
	NorthEast LatLng `json:"northeast"`
	SouthWest LatLng `json:"southwest"`
}

// String renders the viewport in the "south,west|north,east" form used by the
// geocoding bounds parameter.
func (b Bounds) String() string {
	return b.SouthWest.String() + "|" + b.NorthEast.String()
}

package models

// ElevationResult is the elevation of a single sampled location, in metres
// relative to mean sea level. Resolution is the maximum distance in metres
// between the data points the value was interpolated from.
type ElevationResult struct {
	Location   LatLng  `json:"location"`
	Elevation  float64 `json:"elevation"`
	Resolution float64 `json:"resolution"`
}

package models

// RoadLatLng is a coordinate pair as rendered by the Roads API, which uses
// long-form field names unlike the rest of the API family.
type RoadLatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SnappedPoint is a point snapped to the road network. OriginalIndex is nil
// for points that were interpolated rather than taken from the input path.
type SnappedPoint struct {
	Location      RoadLatLng `json:"location"`
	OriginalIndex *int       `json:"originalIndex,omitempty"`
	PlaceID       string     `json:"placeId"`
}

// SpeedLimit is the posted speed limit for a road segment.
type SpeedLimit struct {
	PlaceID string  `json:"placeId"`
	Limit   float64 `json:"speedLimit"`
	Units   string  `json:"units"`
}

// SpeedLimitsResponse pairs speed limits with the snapped points they were
// resolved from.
type SpeedLimitsResponse struct {
	SpeedLimits   []SpeedLimit   `json:"speedLimits"`
	SnappedPoints []SnappedPoint `json:"snappedPoints,omitempty"`
}

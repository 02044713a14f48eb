package models

// Distance is a distance value paired with its localized rendering.
type Distance struct {
	Meters        int    `json:"value"`
	HumanReadable string `json:"text"`
}

// Duration is a travel time in seconds paired with its localized rendering.
type Duration struct {
	Seconds       int    `json:"value"`
	HumanReadable string `json:"text"`
}

// Polyline is an encoded sequence of lat/lng points.
type Polyline struct {
	Points string `json:"points"`
}

// Fare is the total transit fare of a route.
type Fare struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
	Text     string  `json:"text"`
}

// Step is a single navigation instruction within a leg.
type Step struct {
	Distance         Distance `json:"distance"`
	Duration         Duration `json:"duration"`
	StartLocation    LatLng   `json:"start_location"`
	EndLocation      LatLng   `json:"end_location"`
	HTMLInstructions string   `json:"html_instructions"`
	Polyline         Polyline `json:"polyline"`
	TravelMode       string   `json:"travel_mode"`
	Maneuver         string   `json:"maneuver,omitempty"`
}

// Leg is the portion of a route between two waypoints.
type Leg struct {
	Distance          Distance  `json:"distance"`
	Duration          Duration  `json:"duration"`
	DurationInTraffic *Duration `json:"duration_in_traffic,omitempty"`
	StartAddress      string    `json:"start_address"`
	EndAddress        string    `json:"end_address"`
	StartLocation     LatLng    `json:"start_location"`
	EndLocation       LatLng    `json:"end_location"`
	Steps             []Step    `json:"steps"`
}

// Route is a single routing alternative returned by the directions endpoint.
type Route struct {
	Summary          string   `json:"summary"`
	Legs             []Leg    `json:"legs"`
	OverviewPolyline Polyline `json:"overview_polyline"`
	Bounds           Bounds   `json:"bounds"`
	Copyrights       string   `json:"copyrights"`
	Warnings         []string `json:"warnings"`
	WaypointOrder    []int    `json:"waypoint_order"`
	Fare             *Fare    `json:"fare,omitempty"`
}

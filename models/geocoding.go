package models

// AddressComponent is a single part of a formatted address (street number,
// locality, country, ...). Types follow the API's component taxonomy.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// Geometry describes the location of a geocoding result.
type Geometry struct {
	Location     LatLng  `json:"location"`
	LocationType string  `json:"location_type"`
	Viewport     Bounds  `json:"viewport"`
	Bounds       *Bounds `json:"bounds,omitempty"`
}

// GeocodingResult is a single match returned by the geocoding endpoint.
type GeocodingResult struct {
	AddressComponents []AddressComponent `json:"address_components"`
	FormattedAddress  string             `json:"formatted_address"`
	Geometry          Geometry           `json:"geometry"`
	PlaceID           string             `json:"place_id"`
	PartialMatch      bool               `json:"partial_match,omitempty"`
	Types             []string           `json:"types"`
}

package models

// DistanceMatrixElement is the distance/duration result for a single
// origin-destination pairing. Status is "OK" when the pairing could be
// routed, or an element-level code such as "NOT_FOUND" or
// "ZERO_RESULTS" otherwise.
type DistanceMatrixElement struct {
	Status            string    `json:"status"`
	Distance          Distance  `json:"distance"`
	Duration          Duration  `json:"duration"`
	DurationInTraffic *Duration `json:"duration_in_traffic,omitempty"`
}

// DistanceMatrixRow holds the elements for one origin against every
// destination, in destination order.
type DistanceMatrixRow struct {
	Elements []DistanceMatrixElement `json:"elements"`
}

// DistanceMatrixResponse is the full matrix returned by the distance matrix
// endpoint. Rows are in origin order.
type DistanceMatrixResponse struct {
	OriginAddresses      []string            `json:"origin_addresses"`
	DestinationAddresses []string            `json:"destination_addresses"`
	Rows                 []DistanceMatrixRow `json:"rows"`
}

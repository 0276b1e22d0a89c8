package domain

// Coordinate is an immutable WGS84 position.
type Coordinate struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

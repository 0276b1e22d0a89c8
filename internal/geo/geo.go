package geo

import (
	"math"

	"guardpost/internal/domain"
)

// Earth radius in meters.
const earthRadiusM = 6371000.0

// Distance returns the haversine great-circle distance between a and b in
// meters, unrounded. Out-of-range coordinates are a caller contract
// violation and are validated at the HTTP boundary, not here.
func Distance(a, b domain.Coordinate) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLon := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c
}

// DistanceRounded is Distance rounded to the nearest whole meter. Display
// only: threshold comparisons use the unrounded value to avoid boundary
// flapping.
func DistanceRounded(a, b domain.Coordinate) float64 {
	return math.Round(Distance(a, b))
}

type Verification struct {
	DistanceMeters float64
	Verified       bool
}

// Verify reports whether the reported position lies within radiusMeters of
// the target. The boundary is inclusive: a distance exactly equal to the
// radius verifies.
func Verify(reported, target domain.Coordinate, radiusMeters float64) Verification {
	dist := Distance(reported, target)
	return Verification{
		DistanceMeters: dist,
		Verified:       dist <= radiusMeters,
	}
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

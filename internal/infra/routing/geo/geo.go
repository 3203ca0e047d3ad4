// Package geo holds the geodesic helpers shared by the campus router.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMeters is the mean Earth radius used for haversine distances
const EarthRadiusMeters = 6371000.0

// DistanceMeters calculates the great circle distance between two (lng, lat) points in meters
func DistanceMeters(p1, p2 orb.Point) float64 {
	if p1 == p2 {
		return 0
	}

	lat1Rad := p1.Lat() * math.Pi / 180
	lng1Rad := p1.Lon() * math.Pi / 180
	lat2Rad := p2.Lat() * math.Pi / 180
	lng2Rad := p2.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// NewBound builds a rectangle from its south-west and north-east corners
func NewBound(minLng, minLat, maxLng, maxLat float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{minLng, minLat},
		Max: orb.Point{maxLng, maxLat},
	}
}

// Within reports whether point lies inside bound, edges included.
// NaN coordinates are never inside.
func Within(bound orb.Bound, point orb.Point) bool {
	if math.IsNaN(point.Lon()) || math.IsNaN(point.Lat()) {
		return false
	}

	return bound.Contains(point)
}

// IsValidCoordinate checks if a coordinate is within valid geographic bounds (Earth)
func IsValidCoordinate(point orb.Point) bool {
	lng, lat := point.Lon(), point.Lat()
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

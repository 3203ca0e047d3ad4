package geo

import (
	"math"

	"github.com/paulmach/orb"
)

var compassPoints = [8]string{
	"north", "northeast", "east", "southeast",
	"south", "southwest", "west", "northwest",
}

// Heading returns the planar heading from one point to another in degrees, [0, 360).
// 0 is north and 90 is east; it uses raw degree deltas, not a geodesic bearing.
func Heading(from, to orb.Point) float64 {
	deg := math.Atan2(to.Lon()-from.Lon(), to.Lat()-from.Lat()) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}

	return deg
}

// Compass buckets the heading between two points into one of eight 45° sectors
// centred on the cardinal and diagonal directions.
func Compass(from, to orb.Point) string {
	return CompassForHeading(Heading(from, to))
}

// CompassForHeading maps a heading in degrees to its compass point name
func CompassForHeading(deg float64) string {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}

	idx := int(math.Floor((deg+22.5)/45)) % len(compassPoints)

	return compassPoints[idx]
}

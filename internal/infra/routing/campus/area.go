package campus

import (
	"campusnav/internal/infra/routing/geo"

	"github.com/paulmach/orb"
)

// Area holds the two campus rectangles used to classify coordinates
type Area struct {
	// Campus is the extended campus. Only coordinates inside it are routed on the graph directly.
	Campus orb.Bound
	// Core is the central academic area. It is advisory and does not gate routing.
	Core orb.Bound
}

// DefaultArea returns the rectangles of the compiled-in campus
func DefaultArea() Area {
	return Area{
		Campus: geo.NewBound(-83.0230, 39.9955, -83.0095, 40.0075),
		Core:   geo.NewBound(-83.0180, 40.0000, -83.0120, 40.0050),
	}
}

// IsOnCampus reports whether point lies in the extended campus rectangle
func (a Area) IsOnCampus(point orb.Point) bool {
	return geo.Within(a.Campus, point)
}

// IsInCoreCampus reports whether point lies in the core campus rectangle
func (a Area) IsInCoreCampus(point orb.Point) bool {
	return geo.Within(a.Core, point)
}

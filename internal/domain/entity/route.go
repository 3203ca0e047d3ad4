package entity

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// TravelMode selects the speed used for duration estimates
type TravelMode string

const (
	TravelModeWalk TravelMode = "walk"
	TravelModeBike TravelMode = "bike"
)

// IsValid reports whether the mode is one of the supported travel modes
func (m TravelMode) IsValid() bool {
	return m == TravelModeWalk || m == TravelModeBike
}

// ParseTravelMode converts a user supplied mode, defaulting empty input to walk
func ParseTravelMode(raw string) (TravelMode, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "walk", "walking", "foot":
		return TravelModeWalk, true
	case "bike", "biking", "cycling":
		return TravelModeBike, true
	default:
		return "", false
	}
}

// RouteSource tells callers which engine produced a route
type RouteSource string

const (
	RouteSourceCampus   RouteSource = "campus"
	RouteSourceExternal RouteSource = "external"
)

// Sentinel step endpoints for segments that do not start or end on a graph node
const (
	StepOriginID      = "origin"
	StepDestinationID = "destination"
)

// RouteStep is a single instruction of a route
type RouteStep struct {
	Instruction string  `json:"instruction"`
	Distance    float64 `json:"distance"` // meters
	Duration    float64 `json:"duration"` // seconds
	FromID      string  `json:"fromId"`
	ToID        string  `json:"toId"`
}

// RouteResult is a computed route, owned by the caller
type RouteResult struct {
	Path        []Node      `json:"path,omitempty"`
	Coordinates []orb.Point `json:"coordinates"`
	Distance    float64     `json:"distance"` // meters
	Duration    float64     `json:"duration"` // seconds
	Steps       []RouteStep `json:"steps"`
	Source      RouteSource `json:"source"`
	Mode        TravelMode  `json:"mode"`
}

// LineString returns the drawable polyline of the route
func (r *RouteResult) LineString() orb.LineString {
	return orb.LineString(r.Coordinates)
}

// FeatureCollection renders the route as GeoJSON: the polyline first, then one point per path node
func (r *RouteResult) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	line := geojson.NewFeature(r.LineString())
	line.Properties["source"] = string(r.Source)
	line.Properties["mode"] = string(r.Mode)
	line.Properties["distance"] = r.Distance
	line.Properties["duration"] = r.Duration
	line.Properties["steps"] = len(r.Steps)
	fc.Append(line)

	for _, node := range r.Path {
		point := geojson.NewFeature(node.Coordinates)
		point.ID = node.ID
		point.Properties["name"] = node.Name
		point.Properties["kind"] = string(node.Kind)
		fc.Append(point)
	}

	return fc
}

package entity

// SurfaceKind describes what a walkway is made of
type SurfaceKind string

const (
	SurfaceSidewalk  SurfaceKind = "sidewalk"
	SurfacePath      SurfaceKind = "path"
	SurfaceCrosswalk SurfaceKind = "crosswalk"
	SurfaceStairs    SurfaceKind = "stairs"
	SurfaceBridge    SurfaceKind = "bridge"
)

// IsValid reports whether the surface is one of the known surface kinds
func (s SurfaceKind) IsValid() bool {
	switch s {
	case SurfaceSidewalk, SurfacePath, SurfaceCrosswalk, SurfaceStairs, SurfaceBridge:
		return true
	default:
		return false
	}
}

// Edge is an undirected walkable connection between two nodes.
// It is stored once but traversable in both directions.
type Edge struct {
	From     string      `json:"from"`
	To       string      `json:"to"`
	Distance float64     `json:"distance"` // meters
	Surface  SurfaceKind `json:"surface"`

	// Accessible marks wheelchair-accessible walkways. Routing cost ignores it.
	Accessible bool `json:"accessible"`
}

// Other returns the endpoint opposite to id
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

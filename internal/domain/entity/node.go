package entity

import "github.com/paulmach/orb"

// NodeKind classifies a point of interest in the walkable network
type NodeKind string

const (
	NodeKindBuilding     NodeKind = "building"
	NodeKindIntersection NodeKind = "intersection"
	NodeKindLandmark     NodeKind = "landmark"
	NodeKindEntrance     NodeKind = "entrance"
)

// IsValid reports whether the kind is one of the known node kinds
func (k NodeKind) IsValid() bool {
	switch k {
	case NodeKindBuilding, NodeKindIntersection, NodeKindLandmark, NodeKindEntrance:
		return true
	default:
		return false
	}
}

// Node is a named vertex of the campus graph.
// Coordinates follow orb's (lng, lat) order.
type Node struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Coordinates orb.Point `json:"coordinates"`
	Kind        NodeKind  `json:"kind"`
}

// Lng returns the node longitude
func (n Node) Lng() float64 {
	return n.Coordinates.Lon()
}

// Lat returns the node latitude
func (n Node) Lat() float64 {
	return n.Coordinates.Lat()
}

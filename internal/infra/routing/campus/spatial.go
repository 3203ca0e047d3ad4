package campus

import (
	"math"

	"campusnav/internal/domain/entity"
	"campusnav/internal/infra/routing/geo"

	"github.com/paulmach/orb"
)

// DefaultSnapRadiusMeters is the maximum distance for snapping a coordinate to a node
const DefaultSnapRadiusMeters = 200.0

// NearestNodeResult is the outcome of snapping a coordinate onto the graph
type NearestNodeResult struct {
	Node     entity.Node
	Distance float64 // meters from the query point to the node
	IsValid  bool    // whether the node is within the snap radius
}

// FindNearestNode scans every node in stored order and returns the closest one.
// The first node wins ties. IsValid is false when the closest node is farther
// than maxSnapMeters or the query point is not a valid coordinate.
//
// A linear scan is fine for a campus-sized graph; swap in a grid index if the
// node count grows into the thousands.
func (g *Graph) FindNearestNode(point orb.Point, maxSnapMeters float64) NearestNodeResult {
	if !geo.IsValidCoordinate(point) || len(g.nodes) == 0 {
		return NearestNodeResult{}
	}

	bestIdx := -1
	bestDist := math.MaxFloat64
	for idx, node := range g.nodes {
		dist := geo.DistanceMeters(point, node.Coordinates)
		if dist < bestDist {
			bestDist = dist
			bestIdx = idx
		}
	}

	return NearestNodeResult{
		Node:     g.nodes[bestIdx],
		Distance: bestDist,
		IsValid:  bestDist <= maxSnapMeters,
	}
}

// NearestNode returns the snapped node, or false when nothing lies within maxSnapMeters
func (g *Graph) NearestNode(point orb.Point, maxSnapMeters float64) (entity.Node, bool) {
	result := g.FindNearestNode(point, maxSnapMeters)
	if !result.IsValid {
		return entity.Node{}, false
	}

	return result.Node, true
}

package campus

import (
	"campusnav/internal/domain/entity"

	"github.com/paulmach/orb"
)

// DefaultName labels the compiled-in campus
const DefaultName = "main-campus"

// DefaultNodes returns the compiled-in campus nodes in their canonical order.
// Order matters: nearest-node ties go to the earlier node.
func DefaultNodes() []entity.Node {
	return []entity.Node{
		{ID: "north-gate", Name: "North Gate", Coordinates: orb.Point{-83.0150, 40.0060}, Kind: entity.NodeKindEntrance},
		{ID: "int-north", Name: "North Mall Crossing", Coordinates: orb.Point{-83.0150, 40.0045}, Kind: entity.NodeKindIntersection},
		{ID: "library", Name: "Main Library", Coordinates: orb.Point{-83.0165, 40.0040}, Kind: entity.NodeKindBuilding},
		{ID: "science-hall", Name: "Science Hall", Coordinates: orb.Point{-83.0132, 40.0042}, Kind: entity.NodeKindBuilding},
		{ID: "oval-fountain", Name: "Oval Fountain", Coordinates: orb.Point{-83.0150, 40.0025}, Kind: entity.NodeKindLandmark},
		{ID: "int-west", Name: "West Walk Junction", Coordinates: orb.Point{-83.0175, 40.0025}, Kind: entity.NodeKindIntersection},
		{ID: "int-east", Name: "East Walk Junction", Coordinates: orb.Point{-83.0125, 40.0025}, Kind: entity.NodeKindIntersection},
		{ID: "student-union", Name: "Student Union", Coordinates: orb.Point{-83.0185, 40.0012}, Kind: entity.NodeKindBuilding},
		{ID: "engineering", Name: "Engineering Hall", Coordinates: orb.Point{-83.0115, 40.0010}, Kind: entity.NodeKindBuilding},
		{ID: "clock-tower", Name: "Clock Tower", Coordinates: orb.Point{-83.0150, 40.0008}, Kind: entity.NodeKindLandmark},
		{ID: "int-south", Name: "South Plaza Crossing", Coordinates: orb.Point{-83.0150, 39.9995}, Kind: entity.NodeKindIntersection},
		{ID: "rec-center", Name: "Recreation Center", Coordinates: orb.Point{-83.0170, 39.9982}, Kind: entity.NodeKindBuilding},
		{ID: "river-footbridge", Name: "Riverside Footbridge", Coordinates: orb.Point{-83.0200, 39.9995}, Kind: entity.NodeKindLandmark},
		{ID: "west-gate", Name: "West Gate", Coordinates: orb.Point{-83.0215, 39.9995}, Kind: entity.NodeKindEntrance},
		{ID: "arts-center", Name: "Arts Center", Coordinates: orb.Point{-83.0130, 39.9980}, Kind: entity.NodeKindBuilding},
		{ID: "south-gate", Name: "South Gate", Coordinates: orb.Point{-83.0150, 39.9970}, Kind: entity.NodeKindEntrance},
		{ID: "stadium", Name: "Stadium", Coordinates: orb.Point{-83.0110, 39.9965}, Kind: entity.NodeKindBuilding},
	}
}

// DefaultEdges returns the compiled-in walkways. Distances are surveyed path
// lengths and are never shorter than the straight line between endpoints.
func DefaultEdges() []entity.Edge {
	return []entity.Edge{
		{From: "north-gate", To: "int-north", Distance: 177, Surface: entity.SurfaceSidewalk, Accessible: true},
		{From: "int-north", To: "library", Distance: 148, Surface: entity.SurfacePath, Accessible: true},
		{From: "int-north", To: "science-hall", Distance: 167, Surface: entity.SurfacePath, Accessible: true},
		{From: "int-north", To: "oval-fountain", Distance: 236, Surface: entity.SurfacePath, Accessible: true},
		{From: "library", To: "int-west", Distance: 199, Surface: entity.SurfaceSidewalk, Accessible: true},
		{From: "science-hall", To: "int-east", Distance: 211, Surface: entity.SurfaceSidewalk, Accessible: true},
		{From: "int-west", To: "oval-fountain", Distance: 226, Surface: entity.SurfacePath, Accessible: true},
		{From: "oval-fountain", To: "int-east", Distance: 226, Surface: entity.SurfacePath, Accessible: true},
		{From: "int-west", To: "student-union", Distance: 178, Surface: entity.SurfaceSidewalk, Accessible: true},
		{From: "int-east", To: "engineering", Distance: 199, Surface: entity.SurfaceSidewalk, Accessible: true},
		{From: "oval-fountain", To: "clock-tower", Distance: 201, Surface: entity.SurfacePath, Accessible: true},
		{From: "clock-tower", To: "int-south", Distance: 154, Surface: entity.SurfacePath, Accessible: true},
		{From: "student-union", To: "int-south", Distance: 375, Surface: entity.SurfaceSidewalk, Accessible: true},
		{From: "engineering", To: "int-south", Distance: 363, Surface: entity.SurfaceCrosswalk, Accessible: true},
		{From: "int-south", To: "rec-center", Distance: 237, Surface: entity.SurfaceSidewalk, Accessible: true},
		{From: "int-south", To: "arts-center", Distance: 253, Surface: entity.SurfaceSidewalk, Accessible: true},
		{From: "int-south", To: "south-gate", Distance: 295, Surface: entity.SurfaceCrosswalk, Accessible: true},
		{From: "rec-center", To: "river-footbridge", Distance: 312, Surface: entity.SurfacePath, Accessible: true},
		{From: "student-union", To: "river-footbridge", Distance: 242, Surface: entity.SurfaceStairs, Accessible: false},
		{From: "river-footbridge", To: "west-gate", Distance: 136, Surface: entity.SurfaceBridge, Accessible: true},
		{From: "arts-center", To: "stadium", Distance: 253, Surface: entity.SurfaceSidewalk, Accessible: true},
		{From: "south-gate", To: "stadium", Distance: 366, Surface: entity.SurfaceSidewalk, Accessible: true},
	}
}

// DefaultGraph builds the compiled-in campus graph
func DefaultGraph() (*Graph, error) {
	return NewGraph(DefaultNodes(), DefaultEdges())
}

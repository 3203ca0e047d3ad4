package campus

import (
	"math"
	"testing"

	"campusnav/internal/domain/entity"
	"campusnav/internal/infra/routing/geo"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

// deg converts meters of arc along the equator or a meridian to degrees
func deg(meters float64) float64 {
	return meters / (geo.EarthRadiusMeters * math.Pi / 180)
}

// lineNodes are four nodes 100 m apart along the equator, west to east
func lineNodes() []entity.Node {
	return []entity.Node{
		{ID: "a", Name: "Alpha Hall", Coordinates: orb.Point{0, 0}, Kind: entity.NodeKindBuilding},
		{ID: "b", Name: "Beta Junction", Coordinates: orb.Point{deg(100), 0}, Kind: entity.NodeKindIntersection},
		{ID: "c", Name: "Gamma Statue", Coordinates: orb.Point{deg(200), 0}, Kind: entity.NodeKindLandmark},
		{ID: "d", Name: "Delta Hall", Coordinates: orb.Point{deg(300), 0}, Kind: entity.NodeKindBuilding},
	}
}

func lineEdges() []entity.Edge {
	return []entity.Edge{
		{From: "a", To: "b", Distance: 100, Surface: entity.SurfaceSidewalk, Accessible: true},
		{From: "b", To: "c", Distance: 100, Surface: entity.SurfacePath, Accessible: true},
		{From: "c", To: "d", Distance: 100, Surface: entity.SurfaceSidewalk, Accessible: true},
	}
}

func newLineGraph(t *testing.T) *Graph {
	t.Helper()

	graph, err := NewGraph(lineNodes(), lineEdges())
	require.NoError(t, err)

	return graph
}

func newDefaultGraph(t *testing.T) *Graph {
	t.Helper()

	graph, err := DefaultGraph()
	require.NoError(t, err)

	return graph
}

func nodeIDs(nodes []entity.Node) []string {
	ids := make([]string, 0, len(nodes))
	for _, node := range nodes {
		ids = append(ids, node.ID)
	}

	return ids
}

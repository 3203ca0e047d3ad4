package campus

import (
	"testing"

	"campusnav/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGraph_IsValid(t *testing.T) {
	graph := newDefaultGraph(t)

	assert.Equal(t, len(DefaultNodes()), graph.NodeCount())
	assert.Equal(t, len(DefaultEdges()), graph.EdgeCount())
	assert.Empty(t, graph.InadmissibleEdges(), "compiled-in edges must not be shorter than the straight line")
}

func TestDefaultGraph_NodesOnCampus(t *testing.T) {
	area := DefaultArea()
	for _, node := range DefaultNodes() {
		assert.True(t, area.IsOnCampus(node.Coordinates), "node %s should be on campus", node.ID)
	}
}

func TestDefaultGraph_Connected(t *testing.T) {
	graph := newDefaultGraph(t)
	pathfinder := NewPathfinder(graph)

	for _, node := range graph.Nodes() {
		result := pathfinder.ShortestPath("north-gate", node.ID)
		assert.True(t, result.IsReachable, "node %s should be reachable from north-gate", node.ID)
	}
}

func TestNewGraph_ValidationErrors(t *testing.T) {
	valid := lineNodes()

	tests := []struct {
		name   string
		nodes  []entity.Node
		edges  []entity.Edge
		defect string
	}{
		{
			name:   "no nodes",
			nodes:  nil,
			edges:  nil,
			defect: DefectEmpty,
		},
		{
			name:   "empty id",
			nodes:  []entity.Node{{ID: "", Name: "Nameless", Kind: entity.NodeKindBuilding}},
			defect: DefectMissingID,
		},
		{
			name:   "duplicate id",
			nodes:  append(lineNodes(), valid[0]),
			defect: DefectDuplicateID,
		},
		{
			name:   "unknown kind",
			nodes:  []entity.Node{{ID: "x", Name: "X", Kind: "parking"}},
			defect: DefectInvalidKind,
		},
		{
			name:   "invalid coordinate",
			nodes:  []entity.Node{{ID: "x", Name: "X", Coordinates: orb.Point{200, 0}, Kind: entity.NodeKindLandmark}},
			defect: DefectInvalidCoordinate,
		},
		{
			name:   "dangling edge",
			nodes:  lineNodes(),
			edges:  []entity.Edge{{From: "a", To: "zzz", Distance: 10, Surface: entity.SurfacePath}},
			defect: DefectDanglingEdge,
		},
		{
			name:   "self loop",
			nodes:  lineNodes(),
			edges:  []entity.Edge{{From: "a", To: "a", Distance: 10, Surface: entity.SurfacePath}},
			defect: DefectSelfLoop,
		},
		{
			name:   "zero distance",
			nodes:  lineNodes(),
			edges:  []entity.Edge{{From: "a", To: "b", Distance: 0, Surface: entity.SurfacePath}},
			defect: DefectInvalidDistance,
		},
		{
			name:   "unknown surface",
			nodes:  lineNodes(),
			edges:  []entity.Edge{{From: "a", To: "b", Distance: 100, Surface: "gravel"}},
			defect: DefectInvalidKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph, err := NewGraph(tt.nodes, tt.edges)
			require.Error(t, err)
			assert.Nil(t, graph)
			assert.ErrorIs(t, err, ErrInvalidGraph)

			var graphErr *GraphError
			require.True(t, errors.As(err, &graphErr))
			assert.Equal(t, tt.defect, graphErr.Kind)
		})
	}
}

func TestBuildAdjacencyList_BothDirections(t *testing.T) {
	graph := newLineGraph(t)
	adjList := graph.AdjacencyList()

	require.Len(t, adjList, 4)
	assert.Len(t, adjList["a"], 1)
	assert.Len(t, adjList["b"], 2)
	assert.Len(t, adjList["c"], 2)
	assert.Len(t, adjList["d"], 1)

	for from, neighbors := range adjList {
		for _, neighbor := range neighbors {
			found := false
			for _, back := range adjList[neighbor.NodeID] {
				if back.NodeID == from {
					found = true
					assert.InDelta(t, neighbor.Distance, back.Distance, 1e-9)
				}
			}
			assert.True(t, found, "edge %s -> %s has no reverse entry", from, neighbor.NodeID)
		}
	}
}

func TestBuildAdjacencyList_IsolatedNodeHasEntry(t *testing.T) {
	nodes := append(lineNodes(), entity.Node{ID: "lonely", Name: "Lonely Kiosk", Coordinates: orb.Point{1, 1}, Kind: entity.NodeKindLandmark})

	adjList := BuildAdjacencyList(nodes, lineEdges())

	neighbors, ok := adjList["lonely"]
	assert.True(t, ok)
	assert.Empty(t, neighbors)
}

func TestGraph_NodeByID(t *testing.T) {
	graph := newLineGraph(t)

	node, ok := graph.NodeByID("c")
	require.True(t, ok)
	assert.Equal(t, "Gamma Statue", node.Name)

	_, ok = graph.NodeByID("missing")
	assert.False(t, ok)
}

func TestGraph_NodesReturnsCopy(t *testing.T) {
	graph := newLineGraph(t)

	nodes := graph.Nodes()
	nodes[0].Name = "Changed"

	node, _ := graph.NodeByID("a")
	assert.Equal(t, "Alpha Hall", node.Name)
}

func TestGraph_PathNodes(t *testing.T) {
	graph := newLineGraph(t)

	path, ok := graph.PathNodes([]string{"a", "b", "c"})
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, nodeIDs(path))

	_, ok = graph.PathNodes([]string{"a", "nope"})
	assert.False(t, ok)
}

func TestGraph_InadmissibleEdges(t *testing.T) {
	edges := lineEdges()
	edges[1].Distance = 50 // b and c are 100 m apart

	graph, err := NewGraph(lineNodes(), edges)
	require.NoError(t, err)

	bad := graph.InadmissibleEdges()
	require.Len(t, bad, 1)
	assert.Equal(t, "b", bad[0].From)
	assert.Equal(t, "c", bad[0].To)
}

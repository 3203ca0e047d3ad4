// Package campus implements the campus pedestrian router: a static walkway
// graph, nearest-node snapping, A* search and route assembly.
package campus

import (
	"fmt"
	"math"

	"campusnav/internal/domain/entity"
	"campusnav/internal/infra/routing/geo"
)

// admissibilityTolerance absorbs rounding in stored edge lengths
const admissibilityTolerance = 0.5 // meters

// Neighbor is one adjacency entry: a node reachable over a single edge
type Neighbor struct {
	NodeID   string
	Distance float64
	Edge     entity.Edge
}

// AdjacencyList maps every node ID to the neighbors reachable by one edge
type AdjacencyList map[string][]Neighbor

// Graph is the immutable campus walkway network.
// All methods are safe for concurrent use because nothing mutates after NewGraph.
type Graph struct {
	nodes   []entity.Node
	edges   []entity.Edge
	index   map[string]int
	adjList AdjacencyList
}

// NewGraph validates nodes and edges and builds the adjacency list once.
// Any data-integrity defect is returned as a *GraphError.
func NewGraph(nodes []entity.Node, edges []entity.Edge) (*Graph, error) {
	if err := Validate(nodes, edges); err != nil {
		return nil, err
	}

	g := &Graph{
		nodes: append([]entity.Node(nil), nodes...),
		edges: append([]entity.Edge(nil), edges...),
		index: make(map[string]int, len(nodes)),
	}
	for idx, node := range g.nodes {
		g.index[node.ID] = idx
	}
	g.adjList = BuildAdjacencyList(g.nodes, g.edges)

	return g, nil
}

// Validate checks the node and edge tables for defects that would corrupt routing
func Validate(nodes []entity.Node, edges []entity.Edge) error {
	if len(nodes) == 0 {
		return &GraphError{Kind: DefectEmpty, Msg: "graph has no nodes"}
	}

	ids := make(map[string]bool, len(nodes))
	for _, node := range nodes {
		if node.ID == "" {
			return &GraphError{Kind: DefectMissingID, Msg: fmt.Sprintf("node %q has an empty id", node.Name)}
		}
		if ids[node.ID] {
			return &GraphError{Kind: DefectDuplicateID, Msg: fmt.Sprintf("duplicate node id: %q", node.ID)}
		}
		ids[node.ID] = true

		if !node.Kind.IsValid() {
			return &GraphError{Kind: DefectInvalidKind, Msg: fmt.Sprintf("node %q has unknown kind %q", node.ID, node.Kind)}
		}
		if !geo.IsValidCoordinate(node.Coordinates) {
			return &GraphError{Kind: DefectInvalidCoordinate, Msg: fmt.Sprintf("node %q has invalid coordinates %v", node.ID, node.Coordinates)}
		}
	}

	for _, edge := range edges {
		if edge.From == edge.To {
			return &GraphError{Kind: DefectSelfLoop, Msg: fmt.Sprintf("self-referential edge: %q -> %q", edge.From, edge.To)}
		}
		if !ids[edge.From] {
			return &GraphError{Kind: DefectDanglingEdge, Msg: fmt.Sprintf("edge references unknown node: %q", edge.From)}
		}
		if !ids[edge.To] {
			return &GraphError{Kind: DefectDanglingEdge, Msg: fmt.Sprintf("edge references unknown node: %q", edge.To)}
		}
		if edge.Distance <= 0 || math.IsNaN(edge.Distance) || math.IsInf(edge.Distance, 0) {
			return &GraphError{Kind: DefectInvalidDistance, Msg: fmt.Sprintf("edge %q -> %q has invalid distance %v", edge.From, edge.To, edge.Distance)}
		}
		if !edge.Surface.IsValid() {
			return &GraphError{Kind: DefectInvalidKind, Msg: fmt.Sprintf("edge %q -> %q has unknown surface %q", edge.From, edge.To, edge.Surface)}
		}
	}

	return nil
}

// BuildAdjacencyList derives adjacency in both directions for every stored edge.
// Every node gets an entry, even when it has no edges.
func BuildAdjacencyList(nodes []entity.Node, edges []entity.Edge) AdjacencyList {
	adjList := make(AdjacencyList, len(nodes))
	for _, node := range nodes {
		adjList[node.ID] = []Neighbor{}
	}

	for _, edge := range edges {
		adjList[edge.From] = append(adjList[edge.From], Neighbor{NodeID: edge.To, Distance: edge.Distance, Edge: edge})
		adjList[edge.To] = append(adjList[edge.To], Neighbor{NodeID: edge.From, Distance: edge.Distance, Edge: edge})
	}

	return adjList
}

// NodeByID looks up a node by its identifier
func (g *Graph) NodeByID(id string) (entity.Node, bool) {
	idx, ok := g.index[id]
	if !ok {
		return entity.Node{}, false
	}

	return g.nodes[idx], true
}

// Nodes returns a copy of the nodes in stored order
func (g *Graph) Nodes() []entity.Node {
	return append([]entity.Node(nil), g.nodes...)
}

// Edges returns a copy of the edges in stored order
func (g *Graph) Edges() []entity.Edge {
	return append([]entity.Edge(nil), g.edges...)
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of stored (undirected) edges
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// AdjacencyList returns the cached adjacency list. Callers must not modify it.
func (g *Graph) AdjacencyList() AdjacencyList {
	return g.adjList
}

// Neighbors returns the adjacency entries of a node
func (g *Graph) Neighbors(id string) []Neighbor {
	return g.adjList[id]
}

// InadmissibleEdges lists edges whose stored distance is shorter than the
// straight line between their endpoints. Such edges let the A* heuristic
// overestimate and may yield suboptimal paths.
func (g *Graph) InadmissibleEdges() []entity.Edge {
	var result []entity.Edge
	for _, edge := range g.edges {
		from, _ := g.NodeByID(edge.From)
		to, _ := g.NodeByID(edge.To)
		if edge.Distance+admissibilityTolerance < geo.DistanceMeters(from.Coordinates, to.Coordinates) {
			result = append(result, edge)
		}
	}

	return result
}

// PathNodes resolves a node ID sequence. It returns false if any ID is unknown.
func (g *Graph) PathNodes(ids []string) ([]entity.Node, bool) {
	path := make([]entity.Node, 0, len(ids))
	for _, id := range ids {
		node, ok := g.NodeByID(id)
		if !ok {
			return nil, false
		}
		path = append(path, node)
	}

	return path, true
}

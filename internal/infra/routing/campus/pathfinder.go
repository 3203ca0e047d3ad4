package campus

import (
	"container/heap"
	"math"

	"campusnav/internal/domain/entity"
	"campusnav/internal/infra/routing/geo"
)

// PathResult represents the result of a path search
type PathResult struct {
	NodeIDs     []string // Node sequence from source to target, inclusive
	Distance    float64  // Sum of stored edge distances in meters
	IsReachable bool
}

// Pathfinder runs A* over the campus graph
type Pathfinder struct {
	graph *Graph
}

// NewPathfinder creates a new pathfinder for the given graph
func NewPathfinder(graph *Graph) *Pathfinder {
	return &Pathfinder{graph: graph}
}

// searchNode represents an entry in the open set
type searchNode struct {
	id     string
	gScore float64
	fScore float64
	seq    uint64 // insertion counter, breaks fScore ties
	index  int    // Index in the heap
}

// priorityQueue implements heap.Interface ordered by (fScore, seq)
type priorityQueue []*searchNode

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].fScore != pq[j].fScore {
		return pq[i].fScore < pq[j].fScore
	}

	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	n := len(*pq)
	node := x.(*searchNode)
	node.index = n
	*pq = append(*pq, node)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*pq = old[0 : n-1]

	return node
}

// searchState is the per-query bookkeeping of one A* run
type searchState struct {
	gScore   map[string]float64
	cameFrom map[string]string
	visited  map[string]bool
	open     priorityQueue
	seq      uint64
}

func (s *searchState) push(id string, gScore, fScore float64) {
	heap.Push(&s.open, &searchNode{id: id, gScore: gScore, fScore: fScore, seq: s.seq})
	s.seq++
}

// ShortestPath finds the shortest path from source to target using A*.
// An unreachable target is reported through IsReachable, never as an error.
func (pf *Pathfinder) ShortestPath(sourceID, targetID string) PathResult {
	source, ok := pf.graph.NodeByID(sourceID)
	if !ok {
		return PathResult{IsReachable: false}
	}
	target, ok := pf.graph.NodeByID(targetID)
	if !ok {
		return PathResult{IsReachable: false}
	}

	state := pf.initSearchState()
	state.gScore[sourceID] = 0
	state.push(sourceID, 0, geo.DistanceMeters(source.Coordinates, target.Coordinates))

	for state.open.Len() > 0 {
		current := heap.Pop(&state.open).(*searchNode)

		if state.visited[current.id] {
			continue
		}
		state.visited[current.id] = true

		// Found target
		if current.id == targetID {
			return PathResult{
				NodeIDs:     reconstructPath(state.cameFrom, targetID),
				Distance:    current.gScore,
				IsReachable: true,
			}
		}

		pf.relaxEdges(current, target, state)
	}

	// Target not reachable
	return PathResult{IsReachable: false}
}

func (pf *Pathfinder) initSearchState() *searchState {
	state := &searchState{
		gScore:   make(map[string]float64, pf.graph.NodeCount()),
		cameFrom: make(map[string]string),
		visited:  make(map[string]bool),
		open:     make(priorityQueue, 0),
	}
	for _, node := range pf.graph.nodes {
		state.gScore[node.ID] = math.Inf(1)
	}
	heap.Init(&state.open)

	return state
}

func (pf *Pathfinder) relaxEdges(current *searchNode, target entity.Node, state *searchState) {
	for _, neighbor := range pf.graph.Neighbors(current.id) {
		if state.visited[neighbor.NodeID] {
			continue
		}

		tentative := current.gScore + neighbor.Distance
		if tentative < state.gScore[neighbor.NodeID] {
			state.gScore[neighbor.NodeID] = tentative
			state.cameFrom[neighbor.NodeID] = current.id

			node, _ := pf.graph.NodeByID(neighbor.NodeID)
			state.push(neighbor.NodeID, tentative, tentative+geo.DistanceMeters(node.Coordinates, target.Coordinates))
		}
	}
}

// reconstructPath walks cameFrom back from the target and reverses the result
func reconstructPath(cameFrom map[string]string, targetID string) []string {
	path := []string{targetID}
	current := targetID
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

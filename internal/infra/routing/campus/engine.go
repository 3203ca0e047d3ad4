package campus

import (
	"log/slog"
	"maps"

	"campusnav/internal/domain/entity"

	"github.com/paulmach/orb"
)

// EngineConfig holds configuration for the campus routing engine
type EngineConfig struct {
	SnapRadiusMeters      float64    // Maximum distance to snap a coordinate to a node
	StitchThresholdMeters float64    // Distance from which off-node endpoints get their own leg
	Speeds                SpeedTable // Per-mode speeds for duration estimates
	Area                  Area       // Campus and core campus rectangles
}

// DefaultEngineConfig returns the reference configuration of the compiled-in campus
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SnapRadiusMeters:      DefaultSnapRadiusMeters,
		StitchThresholdMeters: DefaultStitchThresholdMeters,
		Speeds:                DefaultSpeeds(),
		Area:                  DefaultArea(),
	}
}

// Engine bundles the graph, pathfinder and assembler behind one read-only value.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	config     EngineConfig
	graph      *Graph
	pathfinder *Pathfinder
	assembler  *Assembler
	logger     *slog.Logger
}

// NewEngine creates a campus engine over graph
func NewEngine(graph *Graph, config EngineConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if config.SnapRadiusMeters <= 0 {
		config.SnapRadiusMeters = DefaultSnapRadiusMeters
	}

	assembler := NewAssembler(config.Speeds, config.StitchThresholdMeters)
	config.Speeds = assembler.Speeds()
	config.StitchThresholdMeters = assembler.StitchThreshold()

	engine := &Engine{
		config:     config,
		graph:      graph,
		pathfinder: NewPathfinder(graph),
		assembler:  assembler,
		logger:     logger,
	}

	for _, edge := range graph.InadmissibleEdges() {
		logger.Warn("Edge distance is shorter than the straight line between its nodes",
			"from", edge.From, "to", edge.To, "distance", edge.Distance)
	}

	return engine
}

// Graph returns the underlying campus graph
func (e *Engine) Graph() *Graph {
	return e.graph
}

// Config returns the effective engine configuration. The speed table is a copy.
func (e *Engine) Config() EngineConfig {
	config := e.config
	config.Speeds = maps.Clone(e.config.Speeds)

	return config
}

// Assembler returns the route assembler
func (e *Engine) Assembler() *Assembler {
	return e.assembler
}

// IsOnCampus reports whether point lies in the extended campus
func (e *Engine) IsOnCampus(point orb.Point) bool {
	return e.config.Area.IsOnCampus(point)
}

// IsInCoreCampus reports whether point lies in the core campus
func (e *Engine) IsInCoreCampus(point orb.Point) bool {
	return e.config.Area.IsInCoreCampus(point)
}

// Snap returns the nearest node within the configured snap radius
func (e *Engine) Snap(point orb.Point) (entity.Node, bool) {
	return e.graph.NearestNode(point, e.config.SnapRadiusMeters)
}

// FindNearestNode snaps point using radius, or the configured radius when radius is not positive
func (e *Engine) FindNearestNode(point orb.Point, radius float64) NearestNodeResult {
	if radius <= 0 {
		radius = e.config.SnapRadiusMeters
	}

	return e.graph.FindNearestNode(point, radius)
}

// Path runs A* between two node IDs and resolves the node sequence
func (e *Engine) Path(fromID, toID string) ([]entity.Node, bool) {
	result := e.pathfinder.ShortestPath(fromID, toID)
	if !result.IsReachable {
		return nil, false
	}

	return e.graph.PathNodes(result.NodeIDs)
}

// Route snaps both endpoints, searches the graph and assembles the result.
// It returns false when either snap fails or no path connects the nodes.
func (e *Engine) Route(origin, destination orb.Point, mode entity.TravelMode) (*entity.RouteResult, bool) {
	from, ok := e.Snap(origin)
	if !ok {
		e.logger.Debug("Origin is outside the snap radius", "lng", origin.Lon(), "lat", origin.Lat())
		return nil, false
	}
	to, ok := e.Snap(destination)
	if !ok {
		e.logger.Debug("Destination is outside the snap radius", "lng", destination.Lon(), "lat", destination.Lat())
		return nil, false
	}

	path, ok := e.Path(from.ID, to.ID)
	if !ok {
		e.logger.Debug("No campus path", "from", from.ID, "to", to.ID)
		return nil, false
	}

	return e.assembler.Assemble(path, origin, destination, mode), true
}

package campus

import (
	"log/slog"

	"campusnav/internal/infra/routing/loader"

	"github.com/pkg/errors"
)

// LoadGraph builds the campus graph from dataDir, or the compiled-in campus when dataDir is empty.
// Metadata problems are logged; data-integrity defects are fatal.
func LoadGraph(dataDir string, logger *slog.Logger) (*Graph, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if dataDir == "" {
		graph, err := DefaultGraph()
		if err != nil {
			return nil, errors.Wrap(err, "compiled-in campus graph is invalid")
		}
		logger.Info("Loaded compiled-in campus graph",
			"campus", DefaultName, "nodes", graph.NodeCount(), "edges", graph.EdgeCount())

		return graph, nil
	}

	// Load graph data
	data, err := loader.NewCSVLoader(dataDir).Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load graph data")
	}

	// Load metadata
	metadata, err := loader.LoadMetadata(dataDir)
	if err != nil {
		logger.Warn("Failed to load graph metadata", "error", err)
		// Continue without metadata - it's not strictly required
	} else {
		if err := metadata.Validate(); err != nil {
			logger.Warn("Graph metadata validation failed", "error", err)
		}
		if err := metadata.MatchesData(data); err != nil {
			logger.Warn("Graph metadata does not match data files", "error", err)
		}
		logger.Info("Graph metadata loaded", slog.Any("metadata", metadata.Summary()))
	}

	graph, err := NewGraph(data.Nodes, data.Edges)
	if err != nil {
		return nil, errors.Wrapf(err, "graph data in %s is invalid", dataDir)
	}
	logger.Info("Loaded campus graph", "dir", dataDir, "nodes", graph.NodeCount(), "edges", graph.EdgeCount())

	return graph, nil
}

// Export converts the graph into loader data with matching metadata
func (g *Graph) Export(metadata loader.GraphMetadata) (*loader.GraphData, *loader.GraphMetadata) {
	data := &loader.GraphData{Nodes: g.Nodes(), Edges: g.Edges()}
	metadata.Output = loader.OutputInfo{
		NodesCount: int64(len(data.Nodes)),
		EdgesCount: int64(len(data.Edges)),
	}

	return data, &metadata
}

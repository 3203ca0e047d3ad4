package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// GraphMetadata records the provenance of a campus graph data directory
type GraphMetadata struct {
	Version string      `json:"version"`
	Campus  CampusInfo  `json:"campus"`
	Output  OutputInfo  `json:"output"`
	Survey  *SurveyInfo `json:"survey,omitempty"`
}

// CampusInfo describes the campus the graph covers
type CampusInfo struct {
	Name        string    `json:"name"`
	GeneratedAt time.Time `json:"generated_at"`
	Generator   string    `json:"generator,omitempty"`
}

// OutputInfo contains the row counts of the data files
type OutputInfo struct {
	NodesCount int64 `json:"nodes_count"`
	EdgesCount int64 `json:"edges_count"`
}

// SurveyInfo describes how edge lengths were measured
type SurveyInfo struct {
	Method   string    `json:"method"`
	Surveyed time.Time `json:"surveyed,omitzero"`
}

// LoadMetadata loads and parses the metadata.json file from the given directory
func LoadMetadata(dataDir string) (*GraphMetadata, error) {
	metadataPath := filepath.Join(dataDir, MetadataFile)

	data, err := os.ReadFile(metadataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, "metadata.json not found in graph data directory")
		}

		return nil, errors.Wrap(err, "failed to read metadata.json")
	}

	var metadata GraphMetadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, errors.Wrap(err, "failed to parse metadata.json")
	}

	return &metadata, nil
}

// WriteMetadata writes metadata.json into dataDir
func WriteMetadata(dataDir string, metadata *GraphMetadata) error {
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode metadata")
	}

	if err := os.WriteFile(filepath.Join(dataDir, MetadataFile), append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "failed to write metadata.json")
	}

	return nil
}

// Validate checks if the metadata is valid and complete
func (m *GraphMetadata) Validate() error {
	if m.Version == "" {
		return errors.New("metadata version is required")
	}

	if m.Campus.Name == "" {
		return errors.New("campus name is required")
	}

	if m.Campus.GeneratedAt.IsZero() {
		return errors.New("campus generated_at timestamp is required")
	}

	if m.Output.NodesCount <= 0 {
		return errors.New("output nodes_count must be positive")
	}

	if m.Output.EdgesCount < 0 {
		return errors.New("output edges_count must not be negative")
	}

	return nil
}

// MatchesData reports a mismatch between the recorded and the loaded row counts
func (m *GraphMetadata) MatchesData(data *GraphData) error {
	if m.Output.NodesCount != int64(len(data.Nodes)) {
		return errors.Errorf("metadata lists %d nodes, nodes.csv has %d", m.Output.NodesCount, len(data.Nodes))
	}
	if m.Output.EdgesCount != int64(len(data.Edges)) {
		return errors.Errorf("metadata lists %d edges, edges.csv has %d", m.Output.EdgesCount, len(data.Edges))
	}

	return nil
}

// GetAge returns the age of the graph data since generation
func (m *GraphMetadata) GetAge() time.Duration {
	return time.Since(m.Campus.GeneratedAt)
}

// Summary returns a brief summary of the metadata for logging
func (m *GraphMetadata) Summary() map[string]any {
	return map[string]any{
		"version":      m.Version,
		"campus":       m.Campus.Name,
		"generated_at": m.Campus.GeneratedAt,
		"nodes_count":  m.Output.NodesCount,
		"edges_count":  m.Output.EdgesCount,
	}
}

// Package loader reads and writes campus graph data directories:
// nodes.csv, edges.csv and an optional metadata.json.
package loader

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"campusnav/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// File names inside a graph data directory
const (
	NodesFile    = "nodes.csv"
	EdgesFile    = "edges.csv"
	MetadataFile = "metadata.json"
)

var (
	nodesHeader = []string{"id", "name", "lng", "lat", "kind"}
	edgesHeader = []string{"from", "to", "distance", "surface", "accessible"}
)

// GraphData holds all loaded graph data in file order
type GraphData struct {
	Nodes []entity.Node
	Edges []entity.Edge
}

// CSVLoader handles loading of campus graph data from CSV files
type CSVLoader struct {
	dataDir string
}

// NewCSVLoader creates a new CSV loader for the given data directory
func NewCSVLoader(dataDir string) *CSVLoader {
	return &CSVLoader{dataDir: dataDir}
}

// Load loads nodes and edges. Structural validation is left to the graph builder.
func (l *CSVLoader) Load() (*GraphData, error) {
	nodes, err := l.LoadNodes()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	edges, err := l.LoadEdges()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &GraphData{
		Nodes: nodes,
		Edges: edges,
	}, nil
}

// LoadNodes loads nodes from nodes.csv
// Expected CSV format: id,name,lng,lat,kind
func (l *CSVLoader) LoadNodes() ([]entity.Node, error) {
	var nodes []entity.Node
	err := l.readRows(NodesFile, nodesHeader, func(record []string, lineNum int) error {
		node, parseErr := parseNode(record, lineNum)
		if parseErr != nil {
			return parseErr
		}
		nodes = append(nodes, node)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return nodes, nil
}

// LoadEdges loads edges from edges.csv
// Expected CSV format: from,to,distance,surface,accessible
func (l *CSVLoader) LoadEdges() ([]entity.Edge, error) {
	var edges []entity.Edge
	err := l.readRows(EdgesFile, edgesHeader, func(record []string, lineNum int) error {
		edge, parseErr := parseEdge(record, lineNum)
		if parseErr != nil {
			return parseErr
		}
		edges = append(edges, edge)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return edges, nil
}

// readRows opens name, checks the header row and hands every record to fn with its line number
func (l *CSVLoader) readRows(name string, header []string, fn func(record []string, lineNum int) error) error {
	path := filepath.Join(l.dataDir, name)
	file, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	first, err := reader.Read()
	if err != nil {
		return errors.Wrapf(err, "failed to read %s header", name)
	}
	// the first row must be the header, never data
	if !matchesHeader(first, header) {
		return errors.Errorf("unexpected %s header %v", name, first)
	}

	columns := len(header)
	lineNum := 1

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return errors.WithStack(readErr)
		}
		lineNum++

		if len(record) < columns {
			return errors.Errorf("invalid %s format at line %d: expected %d columns, got %d", name, lineNum, columns, len(record))
		}

		if err := fn(record, lineNum); err != nil {
			return err
		}
	}

	return nil
}

// matchesHeader compares the leading columns case-insensitively; trailing extra columns are allowed
func matchesHeader(record, header []string) bool {
	if len(record) < len(header) {
		return false
	}
	for i, want := range header {
		got := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(record[i], "\ufeff")))
		if got != want {
			return false
		}
	}

	return true
}

func parseNode(record []string, lineNum int) (entity.Node, error) {
	lng, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return entity.Node{}, errors.Wrapf(err, "invalid lng at %s line %d", NodesFile, lineNum)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return entity.Node{}, errors.Wrapf(err, "invalid lat at %s line %d", NodesFile, lineNum)
	}

	return entity.Node{
		ID:          strings.TrimSpace(record[0]),
		Name:        strings.TrimSpace(record[1]),
		Coordinates: orb.Point{lng, lat},
		Kind:        entity.NodeKind(strings.TrimSpace(record[4])),
	}, nil
}

func parseEdge(record []string, lineNum int) (entity.Edge, error) {
	distance, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return entity.Edge{}, errors.Wrapf(err, "invalid distance at %s line %d", EdgesFile, lineNum)
	}

	accessible, err := strconv.ParseBool(strings.TrimSpace(record[4]))
	if err != nil {
		return entity.Edge{}, errors.Wrapf(err, "invalid accessible flag at %s line %d", EdgesFile, lineNum)
	}

	return entity.Edge{
		From:       strings.TrimSpace(record[0]),
		To:         strings.TrimSpace(record[1]),
		Distance:   distance,
		Surface:    entity.SurfaceKind(strings.TrimSpace(record[3])),
		Accessible: accessible,
	}, nil
}

package loader

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"campusnav/internal/domain/entity"

	"github.com/pkg/errors"
)

// WriteGraph writes nodes.csv and edges.csv into dataDir, creating it if needed
func WriteGraph(dataDir string, data *GraphData) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create data directory")
	}

	nodeRows := make([][]string, 0, len(data.Nodes))
	for _, node := range data.Nodes {
		nodeRows = append(nodeRows, []string{
			node.ID,
			node.Name,
			strconv.FormatFloat(node.Lng(), 'f', -1, 64),
			strconv.FormatFloat(node.Lat(), 'f', -1, 64),
			string(node.Kind),
		})
	}
	if err := writeCSV(filepath.Join(dataDir, NodesFile), nodesHeader, nodeRows); err != nil {
		return err
	}

	edgeRows := make([][]string, 0, len(data.Edges))
	for _, edge := range data.Edges {
		edgeRows = append(edgeRows, edgeRecord(edge))
	}

	return writeCSV(filepath.Join(dataDir, EdgesFile), edgesHeader, edgeRows)
}

func edgeRecord(edge entity.Edge) []string {
	return []string{
		edge.From,
		edge.To,
		strconv.FormatFloat(edge.Distance, 'f', -1, 64),
		string(edge.Surface),
		strconv.FormatBool(edge.Accessible),
	}
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return errors.WithStack(err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "failed to write %s", filepath.Base(path))
	}

	return nil
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"campusnav/internal/infra/routing/campus"
	"campusnav/internal/infra/routing/loader"
	"campusnav/internal/util"

	"github.com/pkg/errors"
)

func runValidate(w io.Writer, dir string) error {
	fmt.Fprintf(w, "Validating campus graph in directory: %s\n", dir)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return errors.Errorf("directory does not exist: %s", dir)
	}

	metadata, err := loader.LoadMetadata(dir)
	if err != nil {
		fmt.Fprintf(w, "  metadata: %v\n", err)
	} else {
		if err := metadata.Validate(); err != nil {
			return errors.Wrap(err, "invalid metadata")
		}
		fmt.Fprintf(w, "  metadata: %s v%s, generated %s\n",
			metadata.Campus.Name, metadata.Version, metadata.Campus.GeneratedAt.Format("2006-01-02 15:04:05"))
	}

	graph, err := campus.LoadGraph(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		return errors.Wrap(err, "validation failed")
	}
	fmt.Fprintf(w, "  nodes: %d\n  edges: %d\n", graph.NodeCount(), graph.EdgeCount())

	for _, name := range []string{loader.NodesFile, loader.EdgesFile} {
		sum, err := util.FileChecksum(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s sha256: %s\n", name, sum)
	}

	if metadata != nil {
		data, _ := graph.Export(*metadata)
		if err := metadata.MatchesData(data); err != nil {
			return errors.Wrap(err, "metadata does not match data files")
		}
	}

	for _, edge := range graph.InadmissibleEdges() {
		fmt.Fprintf(w, "  warning: edge %s-%s is shorter (%.1f m) than the straight line between its nodes\n",
			edge.From, edge.To, edge.Distance)
	}

	fmt.Fprintln(w, "Validation passed")

	return nil
}

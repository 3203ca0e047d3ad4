package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"campusnav/config"
	"campusnav/internal/domain/entity"
	"campusnav/internal/infra/routing/campus"
	"campusnav/internal/infra/routing/geo"
	"campusnav/internal/util"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

type routeOptions struct {
	dir     string
	from    string
	to      string
	mode    string
	geojson bool
	routing *config.RoutingConfig // nil routes with the built-in defaults
}

func runRoute(w io.Writer, opts routeOptions) error {
	from, err := parsePoint(opts.from)
	if err != nil {
		return errors.Wrap(err, "invalid --from")
	}
	to, err := parsePoint(opts.to)
	if err != nil {
		return errors.Wrap(err, "invalid --to")
	}
	mode, ok := entity.ParseTravelMode(opts.mode)
	if !ok {
		return errors.Errorf("unsupported mode %q", opts.mode)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := opts.dir
	if dir == "" && opts.routing != nil {
		dir = opts.routing.DataPath
	}
	graph, err := campus.LoadGraph(dir, logger)
	if err != nil {
		return err
	}
	engine := campus.NewEngine(graph, campus.EngineConfigFrom(opts.routing), logger)

	result, ok := engine.Route(from, to, mode)
	if !ok {
		return errors.New("no campus route between these points")
	}

	if opts.geojson {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return errors.WithStack(encoder.Encode(result.FeatureCollection()))
	}

	for i, step := range result.Steps {
		fmt.Fprintf(w, "%2d. %s (%s)\n", i+1, step.Instruction, util.FormatDistance(step.Distance))
	}
	fmt.Fprintf(w, "Total: %s, %s (%s)\n", util.FormatDistance(result.Distance), util.FormatDuration(result.Duration), mode)

	return nil
}

// parsePoint reads "lng,lat"
func parsePoint(raw string) (orb.Point, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return orb.Point{}, errors.Errorf("expected lng,lat, got %q", raw)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "invalid longitude")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "invalid latitude")
	}

	point := orb.Point{lng, lat}
	if !geo.IsValidCoordinate(point) {
		return orb.Point{}, errors.Errorf("coordinate out of range: %q", raw)
	}

	return point, nil
}

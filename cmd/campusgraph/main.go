package main

import (
	"flag"
	"fmt"
	"os"

	"campusnav/config"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Supported subcommands:
// - validate: Load and validate a graph data directory
// - export:   Write the compiled-in campus as CSV + metadata
// - route:    Compute a campus-only route between two coordinates

func main() {
	_ = godotenv.Load()

	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	routeCmd := flag.NewFlagSet("route", flag.ExitOnError)

	validateDir := validateCmd.String("dir", "./data/campus", "Graph data directory to validate")

	exportOutput := exportCmd.String("output", "./data/campus", "Output directory for CSV files")
	exportVersion := exportCmd.String("version", "1.0", "Data version written to metadata.json")

	routeDir := routeCmd.String("dir", "", "Graph data directory (default: routing.dataPath, else compiled-in campus)")
	routeFrom := routeCmd.String("from", "", "Origin as lng,lat")
	routeTo := routeCmd.String("to", "", "Destination as lng,lat")
	routeMode := routeCmd.String("mode", "walk", "Travel mode (walk, bike)")
	routeGeoJSON := routeCmd.Bool("geojson", false, "Print the route as a GeoJSON FeatureCollection")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	flags := graphFlags{
		Validate: validateFlags{
			cmd: validateCmd,
			dir: validateDir,
		},
		Export: exportFlags{
			cmd:     exportCmd,
			output:  exportOutput,
			version: exportVersion,
		},
		Route: routeFlags{
			cmd:     routeCmd,
			dir:     routeDir,
			from:    routeFrom,
			to:      routeTo,
			mode:    routeMode,
			geojson: routeGeoJSON,
		},
	}

	if err := runSubcommand(&flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type graphFlags struct {
	Validate validateFlags
	Export   exportFlags
	Route    routeFlags
}

type validateFlags struct {
	cmd *flag.FlagSet
	dir *string
}

type exportFlags struct {
	cmd     *flag.FlagSet
	output  *string
	version *string
}

type routeFlags struct {
	cmd     *flag.FlagSet
	dir     *string
	from    *string
	to      *string
	mode    *string
	geojson *bool
}

func runSubcommand(flags *graphFlags) error {
	switch os.Args[1] {
	case "validate":
		return handleValidate(flags)
	case "export":
		return handleExport(flags)
	case "route":
		return handleRoute(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleValidate(flags *graphFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	return runValidate(os.Stdout, *flags.Validate.dir)
}

func handleExport(flags *graphFlags) error {
	if err := flags.Export.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse export flags")
	}

	return runExport(os.Stdout, *flags.Export.output, *flags.Export.version)
}

func handleRoute(flags *graphFlags) error {
	if err := flags.Route.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse route flags")
	}

	if *flags.Route.from == "" || *flags.Route.to == "" {
		return errors.New("--from and --to flags are required for route command")
	}

	// Route with the same engine settings as the server when a config file is found
	var routing *config.RoutingConfig
	if cfg, err := config.New(); err == nil {
		routing = cfg.Routing
	} else {
		fmt.Fprintf(os.Stderr, "No config loaded, using default routing settings: %v\n", err)
	}

	return runRoute(os.Stdout, routeOptions{
		dir:     *flags.Route.dir,
		from:    *flags.Route.from,
		to:      *flags.Route.to,
		mode:    *flags.Route.mode,
		geojson: *flags.Route.geojson,
		routing: routing,
	})
}

func printUsage() {
	fmt.Println("Usage: campusgraph <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  validate    Validate a graph data directory")
	fmt.Println("  export      Export the compiled-in campus graph")
	fmt.Println("  route       Compute a campus route")
	fmt.Println("")
	fmt.Println("Use 'campusgraph <command> -h' for more information about a command.")
}

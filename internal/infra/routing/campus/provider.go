package campus

import (
	"log/slog"

	"campusnav/config"
	"campusnav/internal/domain/entity"
	"campusnav/internal/infra/routing/geo"

	"go.uber.org/fx"
)

// EngineParams holds dependencies for the campus engine, injected by Fx
type EngineParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEngineFromConfig loads the configured graph and builds the engine over it
func NewEngineFromConfig(params EngineParams) (*Engine, error) {
	routing := params.Config.Routing
	if routing == nil {
		routing = &config.RoutingConfig{}
	}

	graph, err := LoadGraph(routing.DataPath, params.Logger)
	if err != nil {
		return nil, err
	}

	return NewEngine(graph, EngineConfigFrom(routing), params.Logger), nil
}

// EngineConfigFrom overlays the configured values on the defaults; zero values keep the default
func EngineConfigFrom(routing *config.RoutingConfig) EngineConfig {
	engineConfig := DefaultEngineConfig()
	if routing == nil {
		return engineConfig
	}

	if routing.SnapRadiusMeters > 0 {
		engineConfig.SnapRadiusMeters = routing.SnapRadiusMeters
	}
	if routing.StitchThresholdMeters > 0 {
		engineConfig.StitchThresholdMeters = routing.StitchThresholdMeters
	}
	if routing.WalkSpeedMps > 0 {
		engineConfig.Speeds[entity.TravelModeWalk] = routing.WalkSpeedMps
	}
	if routing.BikeSpeedMps > 0 {
		engineConfig.Speeds[entity.TravelModeBike] = routing.BikeSpeedMps
	}
	if !routing.CampusBounds.IsZero() {
		b := routing.CampusBounds
		engineConfig.Area.Campus = geo.NewBound(b.MinLng, b.MinLat, b.MaxLng, b.MaxLat)
	}
	if !routing.CoreCampusBounds.IsZero() {
		b := routing.CoreCampusBounds
		engineConfig.Area.Core = geo.NewBound(b.MinLng, b.MinLat, b.MaxLng, b.MaxLat)
	}

	return engineConfig
}

// Module provides the campus engine FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEngineFromConfig),
)

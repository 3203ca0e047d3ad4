package osrm

import (
	"log/slog"

	"campusnav/config"
	"campusnav/internal/domain/entity"
	"campusnav/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RouterParams holds dependencies for the external router, injected by Fx
type RouterParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewExternalRouter creates the OSRM client, or returns nil when the external router is disabled
func NewExternalRouter(params RouterParams) (service.ExternalRouter, error) {
	cfg := params.Config.ExternalRouter
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("External router disabled, off-campus requests will not be handled")

		return nil, nil
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required when the external router is enabled")
	}

	profiles := make(map[entity.TravelMode]string, len(cfg.Profiles))
	for rawMode, profile := range cfg.Profiles {
		mode, ok := entity.ParseTravelMode(rawMode)
		if !ok || rawMode == "" {
			return nil, errors.Errorf("unknown travel mode %q in external router profiles", rawMode)
		}
		profiles[mode] = profile
	}

	logger.Info("Using OSRM external router",
		slog.String("base_url", cfg.BaseURL),
		slog.Duration("timeout", cfg.Timeout),
	)

	return NewClient(Config{
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.Timeout,
		Profiles: profiles,
	}, logger), nil
}

// Module provides the external router FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewExternalRouter),
)

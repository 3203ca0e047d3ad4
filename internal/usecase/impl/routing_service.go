package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "campusnav/internal/delivery/context"
	"campusnav/internal/domain/entity"
	domainerrors "campusnav/internal/domain/errors"
	"campusnav/internal/domain/service"
	"campusnav/internal/infra/routing/campus"
	"campusnav/internal/infra/routing/geo"
	"campusnav/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var errEmptyExternalRoute = errors.New("external router returned an empty route")

// RoutingServiceParams holds dependencies for the routing service
type RoutingServiceParams struct {
	fx.In

	Engine   *campus.Engine
	External service.ExternalRouter `optional:"true"`
	Logger   *slog.Logger
}

// routingService implements the RoutingUsecase interface.
// It holds only read-only state and is safe for concurrent use.
type routingService struct {
	engine   *campus.Engine
	external service.ExternalRouter
	logger   *slog.Logger
}

// NewRoutingService creates a new routing service instance.
// A nil External router means off-campus requests end in usecase.ErrNotHandled.
func NewRoutingService(params RoutingServiceParams) usecase.RoutingUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &routingService{
		engine:   params.Engine,
		external: params.External,
		logger:   logger,
	}
}

// ComputeRoute tries pure campus routing, then hybrid entry routing, then the external router
func (s *routingService) ComputeRoute(ctx context.Context, origin, destination usecase.Coordinate, mode entity.TravelMode) (*entity.RouteResult, error) {
	from, to := origin.Point(), destination.Point()
	if !geo.IsValidCoordinate(from) || !geo.IsValidCoordinate(to) {
		return nil, domainerrors.ErrInvalidCoordinate
	}
	if !mode.IsValid() {
		return nil, domainerrors.ErrInvalidTravelMode.WithDetails(fmt.Sprintf("unsupported mode %q", mode))
	}

	logger := deliverycontext.LoggerOrDefault(ctx, s.logger)
	originOnCampus := s.engine.IsOnCampus(from)
	destinationOnCampus := s.engine.IsOnCampus(to)

	if originOnCampus && destinationOnCampus {
		if result, ok := s.engine.Route(from, to, mode); ok {
			logger.Debug("Route served by campus graph", "branch", "campus", "steps", len(result.Steps))
			return result, nil
		}
		logger.Debug("Campus routing fell through", "branch", "campus")
	}

	if destinationOnCampus {
		if result, ok := s.hybridRoute(from, to, mode); ok {
			logger.Debug("Route served by campus graph", "branch", "hybrid", "steps", len(result.Steps))
			return result, nil
		}
		logger.Debug("Hybrid routing fell through", "branch", "hybrid")
	}

	return s.delegate(ctx, logger, from, to, mode)
}

// hybridRoute snaps the origin to the nearest campus node wherever it is,
// routes on the graph and prepends a straight entry leg from the true origin.
func (s *routingService) hybridRoute(origin, destination orb.Point, mode entity.TravelMode) (*entity.RouteResult, bool) {
	entry, ok := s.engine.Snap(origin)
	if !ok {
		return nil, false
	}
	target, ok := s.engine.Snap(destination)
	if !ok {
		return nil, false
	}

	path, ok := s.engine.Path(entry.ID, target.ID)
	if !ok {
		return nil, false
	}

	assembler := s.engine.Assembler()
	result := assembler.Assemble(path, entry.Coordinates, destination, mode)
	assembler.PrependLeg(result, origin, fmt.Sprintf("Head to %s to enter campus", entry.Name))

	return result, true
}

// delegate hands the unsnapped request to the external router
func (s *routingService) delegate(ctx context.Context, logger *slog.Logger, origin, destination orb.Point, mode entity.TravelMode) (*entity.RouteResult, error) {
	if s.external == nil {
		logger.Debug("No external router configured", "branch", "delegate")
		return nil, usecase.ErrNotHandled
	}

	route, err := s.external.Route(ctx, origin, destination, mode)
	if err == nil && route == nil {
		err = errEmptyExternalRoute
	}
	if err != nil {
		logger.Warn("External router failed",
			slog.String("mode", string(mode)),
			slog.Any("error", err),
		)

		return nil, &usecase.ExternalRouteError{Profile: mode, Err: err}
	}

	logger.Debug("Route served by external router", "branch", "delegate", "steps", len(route.Steps))

	return &entity.RouteResult{
		Coordinates: route.Coordinates,
		Distance:    route.Distance,
		Duration:    route.Duration,
		Steps:       route.Steps,
		Source:      entity.RouteSourceExternal,
		Mode:        mode,
	}, nil
}

// FindNearestNode snaps a coordinate to the nearest campus node
func (s *routingService) FindNearestNode(_ context.Context, coord usecase.Coordinate, radiusMeters float64) (*usecase.NearestNode, bool, error) {
	point := coord.Point()
	if !geo.IsValidCoordinate(point) {
		return nil, false, domainerrors.ErrInvalidCoordinate
	}

	result := s.engine.FindNearestNode(point, radiusMeters)
	if !result.IsValid {
		return nil, false, nil
	}

	return &usecase.NearestNode{
		Node:     s.nodeInfo(result.Node),
		Distance: result.Distance,
	}, true, nil
}

// ListNodes returns every campus node in stored order
func (s *routingService) ListNodes(_ context.Context) ([]usecase.NodeInfo, error) {
	nodes := s.engine.Graph().Nodes()
	infos := make([]usecase.NodeInfo, 0, len(nodes))
	for _, node := range nodes {
		infos = append(infos, s.nodeInfo(node))
	}

	return infos, nil
}

// ListEdges returns every campus walkway in stored order
func (s *routingService) ListEdges(_ context.Context) ([]entity.Edge, error) {
	return s.engine.Graph().Edges(), nil
}

func (s *routingService) nodeInfo(node entity.Node) usecase.NodeInfo {
	return usecase.NodeInfo{
		Node:         node,
		OnCampus:     s.engine.IsOnCampus(node.Coordinates),
		InCoreCampus: s.engine.IsInCoreCampus(node.Coordinates),
	}
}

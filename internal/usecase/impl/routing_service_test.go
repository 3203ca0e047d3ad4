package impl

import (
	"context"
	"math"
	"sync"
	"testing"

	"campusnav/internal/domain/entity"
	domainerrors "campusnav/internal/domain/errors"
	"campusnav/internal/domain/service"
	"campusnav/internal/infra/routing/campus"
	"campusnav/internal/infra/routing/geo"
	mockService "campusnav/internal/mocks/service"
	"campusnav/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deg converts meters of arc along the equator or a meridian to degrees
func deg(meters float64) float64 {
	return meters / (geo.EarthRadiusMeters * math.Pi / 180)
}

// routingServiceFixtures holds all test dependencies for routing service tests.
type routingServiceFixtures struct {
	service  usecase.RoutingUsecase
	external *mockService.MockExternalRouter
	engine   *campus.Engine
}

// lineCampus is four nodes 100 m apart along the equator with a campus
// rectangle reaching 20 m beyond them, plus an unconnected kiosk.
func lineCampus(t *testing.T) *campus.Engine {
	t.Helper()

	nodes := []entity.Node{
		{ID: "a", Name: "Alpha Hall", Coordinates: orb.Point{0, 0}, Kind: entity.NodeKindBuilding},
		{ID: "b", Name: "Beta Junction", Coordinates: orb.Point{deg(100), 0}, Kind: entity.NodeKindIntersection},
		{ID: "c", Name: "Gamma Statue", Coordinates: orb.Point{deg(200), 0}, Kind: entity.NodeKindLandmark},
		{ID: "d", Name: "Delta Hall", Coordinates: orb.Point{deg(300), 0}, Kind: entity.NodeKindBuilding},
		{ID: "kiosk", Name: "Island Kiosk", Coordinates: orb.Point{deg(150), deg(15)}, Kind: entity.NodeKindLandmark},
	}
	edges := []entity.Edge{
		{From: "a", To: "b", Distance: 100, Surface: entity.SurfaceSidewalk, Accessible: true},
		{From: "b", To: "c", Distance: 100, Surface: entity.SurfacePath, Accessible: true},
		{From: "c", To: "d", Distance: 100, Surface: entity.SurfaceSidewalk, Accessible: true},
	}
	graph, err := campus.NewGraph(nodes, edges)
	require.NoError(t, err)

	config := campus.DefaultEngineConfig()
	config.Area = campus.Area{
		Campus: geo.NewBound(-deg(20), -deg(20), deg(320), deg(20)),
		Core:   geo.NewBound(deg(80), -deg(10), deg(220), deg(10)),
	}

	return campus.NewEngine(graph, config, nil)
}

func createTestRoutingService(t *testing.T, engine *campus.Engine) routingServiceFixtures {
	external := mockService.NewMockExternalRouter(t)
	svc := NewRoutingService(RoutingServiceParams{Engine: engine, External: external})

	return routingServiceFixtures{
		service:  svc,
		external: external,
		engine:   engine,
	}
}

func defaultEngine(t *testing.T) *campus.Engine {
	t.Helper()

	graph, err := campus.DefaultGraph()
	require.NoError(t, err)

	return campus.NewEngine(graph, campus.DefaultEngineConfig(), nil)
}

func coord(p orb.Point) usecase.Coordinate {
	return usecase.CoordinateFromPoint(p)
}

func TestRoutingService_ComputeRoute_SameNode(t *testing.T) {
	fx := createTestRoutingService(t, defaultEngine(t))
	library := orb.Point{-83.0165, 40.0040}

	result, err := fx.service.ComputeRoute(context.Background(), coord(library), coord(library), entity.TravelModeWalk)
	require.NoError(t, err)

	assert.Equal(t, entity.RouteSourceCampus, result.Source)
	require.Len(t, result.Path, 1)
	assert.Equal(t, "library", result.Path[0].ID)
	assert.Zero(t, result.Distance)
	assert.Zero(t, result.Duration)
	require.Len(t, result.Steps, 1)
	assert.Equal(t, "Arrive at Main Library", result.Steps[0].Instruction)
}

func TestRoutingService_ComputeRoute_ThreeEdgeCampusRoute(t *testing.T) {
	fx := createTestRoutingService(t, lineCampus(t))

	// a few meters off Alpha Hall and Delta Hall, inside the stitch threshold
	origin := orb.Point{deg(3), deg(2)}
	destination := orb.Point{deg(298), -deg(4)}

	result, err := fx.service.ComputeRoute(context.Background(), coord(origin), coord(destination), entity.TravelModeWalk)
	require.NoError(t, err)

	assert.Equal(t, entity.RouteSourceCampus, result.Source)
	assert.Equal(t, entity.TravelModeWalk, result.Mode)
	assert.InDelta(t, 300.0, result.Distance, 1e-6)
	assert.InDelta(t, 300.0/1.4, result.Duration, 1e-6)
	assert.Len(t, result.Steps, 3)
	assert.Len(t, result.Path, 4)
}

func TestRoutingService_ComputeRoute_ThreeEdgeCampusRouteWithStitching(t *testing.T) {
	fx := createTestRoutingService(t, lineCampus(t))

	origin := orb.Point{-deg(15), 0}
	destination := orb.Point{deg(300), deg(12)}

	result, err := fx.service.ComputeRoute(context.Background(), coord(origin), coord(destination), entity.TravelModeBike)
	require.NoError(t, err)

	assert.Equal(t, entity.RouteSourceCampus, result.Source)
	assert.InDelta(t, 327.0, result.Distance, 1e-6)
	assert.InDelta(t, 327.0/4.2, result.Duration, 1e-6)
	require.Len(t, result.Steps, 5)
	assert.Equal(t, "Head to Alpha Hall", result.Steps[0].Instruction)
	assert.Equal(t, "Continue to your destination", result.Steps[4].Instruction)
	assert.Equal(t, origin, result.Coordinates[0])
	assert.Equal(t, destination, result.Coordinates[len(result.Coordinates)-1])
}

func TestRoutingService_ComputeRoute_Hybrid(t *testing.T) {
	fx := createTestRoutingService(t, lineCampus(t))

	// 100 m west of Alpha Hall, outside the campus rectangle but inside the snap radius
	origin := orb.Point{-deg(100), 0}
	destination := orb.Point{deg(300), 0}

	result, err := fx.service.ComputeRoute(context.Background(), coord(origin), coord(destination), entity.TravelModeWalk)
	require.NoError(t, err)

	assert.Equal(t, entity.RouteSourceCampus, result.Source)
	assert.InDelta(t, 400.0, result.Distance, 1e-6)
	require.Len(t, result.Steps, 4)
	assert.Equal(t, "Head to Alpha Hall to enter campus", result.Steps[0].Instruction)
	assert.Equal(t, entity.StepOriginID, result.Steps[0].FromID)
	assert.Equal(t, "a", result.Steps[0].ToID)
	assert.InDelta(t, 100.0, result.Steps[0].Distance, 1e-6)
	assert.Equal(t, origin, result.Coordinates[0])
	fx.external.AssertNotCalled(t, "Route", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRoutingService_ComputeRoute_DestinationOffCampus(t *testing.T) {
	fx := createTestRoutingService(t, lineCampus(t))
	ctx := context.Background()

	origin := orb.Point{deg(3), 0}
	destination := orb.Point{deg(5000), deg(5000)}
	external := &service.ExternalRoute{
		Coordinates: []orb.Point{origin, destination},
		Distance:    7300,
		Duration:    5200,
		Steps: []entity.RouteStep{
			{Instruction: "Head north on Main Street", Distance: 7300, Duration: 5200, FromID: entity.StepOriginID, ToID: entity.StepDestinationID},
		},
	}

	fx.external.EXPECT().
		Route(ctx, origin, destination, entity.TravelModeWalk).
		Return(external, nil).
		Once()

	result, err := fx.service.ComputeRoute(ctx, coord(origin), coord(destination), entity.TravelModeWalk)
	require.NoError(t, err)

	assert.Equal(t, entity.RouteSourceExternal, result.Source)
	assert.Equal(t, external.Coordinates, result.Coordinates)
	assert.InDelta(t, 7300.0, result.Distance, 1e-9)
	assert.InDelta(t, 5200.0, result.Duration, 1e-9)
	assert.Equal(t, external.Steps, result.Steps)
	assert.Empty(t, result.Path)
	fx.external.AssertNumberOfCalls(t, "Route", 1)
}

func TestRoutingService_ComputeRoute_OriginTooFarForHybrid(t *testing.T) {
	fx := createTestRoutingService(t, lineCampus(t))
	ctx := context.Background()

	origin := orb.Point{-deg(900), 0}
	destination := orb.Point{deg(200), 0}

	fx.external.EXPECT().
		Route(ctx, origin, destination, entity.TravelModeBike).
		Return(&service.ExternalRoute{Distance: 1100, Duration: 262}, nil).
		Once()

	result, err := fx.service.ComputeRoute(ctx, coord(origin), coord(destination), entity.TravelModeBike)
	require.NoError(t, err)
	assert.Equal(t, entity.RouteSourceExternal, result.Source)
	assert.Equal(t, entity.TravelModeBike, result.Mode)
}

func TestRoutingService_ComputeRoute_NoCampusPathDelegates(t *testing.T) {
	fx := createTestRoutingService(t, lineCampus(t))
	ctx := context.Background()

	origin := orb.Point{0, 0}
	kiosk := orb.Point{deg(150), deg(15)}

	fx.external.EXPECT().
		Route(ctx, origin, kiosk, entity.TravelModeWalk).
		Return(&service.ExternalRoute{Distance: 160, Duration: 114}, nil).
		Once()

	result, err := fx.service.ComputeRoute(ctx, coord(origin), coord(kiosk), entity.TravelModeWalk)
	require.NoError(t, err)
	assert.Equal(t, entity.RouteSourceExternal, result.Source)
}

func TestRoutingService_ComputeRoute_ExternalFailure(t *testing.T) {
	fx := createTestRoutingService(t, lineCampus(t))
	ctx := context.Background()
	cause := errors.New("connection refused")

	fx.external.EXPECT().
		Route(ctx, mock.Anything, mock.Anything, entity.TravelModeWalk).
		Return(nil, cause)

	result, err := fx.service.ComputeRoute(ctx, coord(orb.Point{0, 0}), coord(orb.Point{1, 1}), entity.TravelModeWalk)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, usecase.ErrExternalRouter)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, usecase.ErrNotHandled)

	var routeErr *usecase.ExternalRouteError
	require.True(t, errors.As(err, &routeErr))
	assert.Equal(t, entity.TravelModeWalk, routeErr.Profile)
}

func TestRoutingService_ComputeRoute_ExternalEmptyRoute(t *testing.T) {
	fx := createTestRoutingService(t, lineCampus(t))
	ctx := context.Background()

	fx.external.EXPECT().
		Route(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)

	_, err := fx.service.ComputeRoute(ctx, coord(orb.Point{0, 0}), coord(orb.Point{1, 1}), entity.TravelModeWalk)
	assert.ErrorIs(t, err, usecase.ErrExternalRouter)
}

func TestRoutingService_ComputeRoute_ExternalCanceled(t *testing.T) {
	fx := createTestRoutingService(t, lineCampus(t))
	ctx, cancel := context.WithCancel(context.Background())

	fx.external.EXPECT().
		Route(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ orb.Point, _ orb.Point, _ entity.TravelMode) (*service.ExternalRoute, error) {
			cancel()
			<-ctx.Done()

			return nil, ctx.Err()
		})

	result, err := fx.service.ComputeRoute(ctx, coord(orb.Point{0, 0}), coord(orb.Point{1, 1}), entity.TravelModeWalk)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, usecase.ErrExternalRouter)
}

func TestRoutingService_ComputeRoute_NoExternalRouter(t *testing.T) {
	svc := NewRoutingService(RoutingServiceParams{Engine: lineCampus(t)})

	result, err := svc.ComputeRoute(context.Background(), coord(orb.Point{0, 0}), coord(orb.Point{1, 1}), entity.TravelModeWalk)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, usecase.ErrNotHandled)
}

func TestRoutingService_ComputeRoute_InvalidInput(t *testing.T) {
	fx := createTestRoutingService(t, lineCampus(t))
	ctx := context.Background()

	_, err := fx.service.ComputeRoute(ctx, usecase.Coordinate{Lat: 91, Lng: 0}, coord(orb.Point{0, 0}), entity.TravelModeWalk)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)

	_, err = fx.service.ComputeRoute(ctx, coord(orb.Point{0, 0}), usecase.Coordinate{Lat: math.NaN(), Lng: 0}, entity.TravelModeWalk)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)

	_, err = fx.service.ComputeRoute(ctx, coord(orb.Point{0, 0}), coord(orb.Point{0, 0}), "scooter")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTravelMode)
}

func TestRoutingService_ComputeRoute_Concurrent(t *testing.T) {
	fx := createTestRoutingService(t, defaultEngine(t))
	northGate := coord(orb.Point{-83.0150, 40.0060})
	westGate := coord(orb.Point{-83.0215, 39.9995})

	expected, err := fx.service.ComputeRoute(context.Background(), northGate, westGate, entity.TravelModeWalk)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*entity.RouteResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = fx.service.ComputeRoute(context.Background(), northGate, westGate, entity.TravelModeWalk)
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		assert.Equal(t, expected, result)
	}
}

func TestRoutingService_FindNearestNode(t *testing.T) {
	fx := createTestRoutingService(t, lineCampus(t))
	ctx := context.Background()

	nearest, ok, err := fx.service.FindNearestNode(ctx, coord(orb.Point{deg(105), deg(3)}), 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b", nearest.Node.ID)
	assert.True(t, nearest.Node.OnCampus)
	assert.True(t, nearest.Node.InCoreCampus)
	assert.Less(t, nearest.Distance, 10.0)

	_, ok, err = fx.service.FindNearestNode(ctx, coord(orb.Point{deg(105), deg(3)}), 1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = fx.service.FindNearestNode(ctx, usecase.Coordinate{Lat: 0, Lng: 181}, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestRoutingService_ListNodes(t *testing.T) {
	fx := createTestRoutingService(t, lineCampus(t))

	nodes, err := fx.service.ListNodes(context.Background())
	require.NoError(t, err)

	require.Len(t, nodes, 5)
	ids := make([]string, 0, len(nodes))
	for _, node := range nodes {
		ids = append(ids, node.ID)
		assert.True(t, node.OnCampus)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "kiosk"}, ids)
	assert.False(t, nodes[0].InCoreCampus)
	assert.True(t, nodes[1].InCoreCampus)
}

func TestRoutingService_ListEdges(t *testing.T) {
	fx := createTestRoutingService(t, defaultEngine(t))

	edges, err := fx.service.ListEdges(context.Background())
	require.NoError(t, err)
	require.Len(t, edges, 22)

	var stairs int
	for _, edge := range edges {
		if !edge.Accessible {
			stairs++
		}
	}
	assert.Equal(t, 1, stairs)
}

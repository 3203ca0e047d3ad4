package usecase

import (
	"context"
	"fmt"

	"campusnav/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrNotHandled signals that no engine could produce a route for the request.
// It is an expected outcome, not a failure.
var ErrNotHandled = errors.New("route not handled")

// ErrExternalRouter is matched by every failure of the external street router
var ErrExternalRouter = errors.New("external router failed")

// Coordinate represents a geographic coordinate
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point converts the coordinate to orb's (lng, lat) order
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// CoordinateFromPoint converts an orb point to a Coordinate
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}

// ExternalRouteError wraps a failure of the external router.
// It matches ErrExternalRouter and still unwraps to the underlying cause.
type ExternalRouteError struct {
	Profile entity.TravelMode
	Err     error
}

func (e *ExternalRouteError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrExternalRouter.Error(), e.Profile, e.Err)
}

func (e *ExternalRouteError) Unwrap() error { return e.Err }

// Is reports whether target is ErrExternalRouter
func (e *ExternalRouteError) Is(target error) bool {
	return target == ErrExternalRouter
}

// NodeInfo represents a campus node with its area classification
type NodeInfo struct {
	entity.Node
	OnCampus     bool `json:"onCampus"`
	InCoreCampus bool `json:"inCoreCampus"`
}

// NearestNode represents the result of snapping a coordinate onto the campus graph
type NearestNode struct {
	Node     NodeInfo `json:"node"`
	Distance float64  `json:"distance"` // meters
}

// RoutingUsecase defines the interface for campus routing use cases
type RoutingUsecase interface {
	// ComputeRoute routes between two coordinates. It tries the campus graph
	// first and falls back to the external router. ErrNotHandled is returned
	// when nothing can service the request; external failures are returned as
	// *ExternalRouteError.
	ComputeRoute(ctx context.Context, origin, destination Coordinate, mode entity.TravelMode) (*entity.RouteResult, error)

	// FindNearestNode snaps a coordinate to the nearest campus node.
	// A non-positive radius uses the configured snap radius.
	// Returns false when no node lies within the radius.
	FindNearestNode(ctx context.Context, coord Coordinate, radiusMeters float64) (*NearestNode, bool, error)

	// ListNodes returns every campus node in stored order
	ListNodes(ctx context.Context) ([]NodeInfo, error)

	// ListEdges returns every campus walkway in stored order
	ListEdges(ctx context.Context) ([]entity.Edge, error)
}

package service

import (
	"context"

	"campusnav/internal/domain/entity"

	"github.com/paulmach/orb"
)

// ExternalRoute is the answer of a street-level routing service
type ExternalRoute struct {
	Coordinates []orb.Point
	Distance    float64 // meters
	Duration    float64 // seconds
	Steps       []entity.RouteStep
}

// ExternalRouter defines the interface for routing outside the campus graph
type ExternalRouter interface {
	// Route returns a route between origin and destination for the given profile.
	// Network, availability and decoding failures are returned as errors.
	Route(ctx context.Context, origin, destination orb.Point, profile entity.TravelMode) (*ExternalRoute, error)
}

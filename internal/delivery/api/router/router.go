// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"campusnav/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RouteHandler *handler.RouteHandler
	GraphHandler *handler.GraphHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	routeHandler *handler.RouteHandler
	graphHandler *handler.GraphHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		routeHandler: params.RouteHandler,
		graphHandler: params.GraphHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	apiV1.POST("/routes", r.routeHandler.ComputeRoute)

	graphGroup := apiV1.Group("/graph")
	{
		graphGroup.GET("/nodes", r.graphHandler.ListNodes)
		graphGroup.GET("/nodes/nearest", r.graphHandler.NearestNode)
		graphGroup.GET("/edges", r.graphHandler.ListEdges)
	}
}

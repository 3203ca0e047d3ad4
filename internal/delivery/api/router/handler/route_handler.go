package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"campusnav/internal/delivery/api/response"
	"campusnav/internal/domain/entity"
	domainerrors "campusnav/internal/domain/errors"
	"campusnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const formatGeoJSON = "geojson"

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RoutingUC usecase.RoutingUsecase
	Logger    *slog.Logger
}

// RouteHandler serves route computation
type RouteHandler struct {
	routingUC usecase.RoutingUsecase
	logger    *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routingUC: params.RoutingUC,
		logger:    params.Logger,
	}
}

// CoordinateRequest is a lat/lng pair in a request body
type CoordinateRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

func (r *CoordinateRequest) coordinate() usecase.Coordinate {
	return usecase.Coordinate{Lat: *r.Lat, Lng: *r.Lng}
}

// ComputeRouteRequest represents the request body for computing a route
type ComputeRouteRequest struct {
	Origin      *CoordinateRequest `json:"origin" validate:"required"`
	Destination *CoordinateRequest `json:"destination" validate:"required"`
	Mode        string             `json:"mode"` // walk (default) or bike
}

// ComputeRoute handles POST /api/v1/routes. With ?format=geojson the route is
// returned as a bare GeoJSON FeatureCollection.
func (h *RouteHandler) ComputeRoute(c echo.Context) error {
	var req ComputeRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid route request")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), err.Error())
	}

	mode, ok := entity.ParseTravelMode(req.Mode)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidTravelMode.WithDetails(fmt.Sprintf("unsupported mode %q", req.Mode)))
	}

	ctx := c.Request().Context()
	result, err := h.routingUC.ComputeRoute(ctx, req.Origin.coordinate(), req.Destination.coordinate(), mode)
	if err != nil {
		return response.HandleAppError(c, routeError(ctx, err))
	}

	if c.QueryParam("format") == formatGeoJSON {
		return response.GeoJSON(c, http.StatusOK, result.FeatureCollection())
	}

	return response.Success(c, http.StatusOK, result)
}

// routeError translates routing outcomes into API errors
func routeError(ctx context.Context, err error) error {
	if errors.Is(err, usecase.ErrNotHandled) {
		return domainerrors.ErrRouteNotHandled
	}

	var routeErr *usecase.ExternalRouteError
	if errors.As(err, &routeErr) {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domainerrors.ErrRouteCanceled
		}

		return domainerrors.NewExternalRouterError(err, string(routeErr.Profile))
	}

	return err
}

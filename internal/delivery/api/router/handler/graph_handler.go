package handler

import (
	"log/slog"
	"net/http"

	"campusnav/internal/delivery/api/response"
	domainerrors "campusnav/internal/domain/errors"
	"campusnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GraphHandlerParams holds dependencies for GraphHandler, injected by Fx.
type GraphHandlerParams struct {
	fx.In

	RoutingUC usecase.RoutingUsecase
	Logger    *slog.Logger
}

// GraphHandler exposes the campus graph
type GraphHandler struct {
	routingUC usecase.RoutingUsecase
	logger    *slog.Logger
}

// NewGraphHandler is the constructor for GraphHandler
func NewGraphHandler(params GraphHandlerParams) *GraphHandler {
	return &GraphHandler{
		routingUC: params.RoutingUC,
		logger:    params.Logger,
	}
}

// ListNodes handles GET /api/v1/graph/nodes
func (h *GraphHandler) ListNodes(c echo.Context) error {
	nodes, err := h.routingUC.ListNodes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nodes)
}

// ListEdges handles GET /api/v1/graph/edges
func (h *GraphHandler) ListEdges(c echo.Context) error {
	edges, err := h.routingUC.ListEdges(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, edges)
}

// NearestNode handles GET /api/v1/graph/nodes/nearest?lat=&lng=&radius=
func (h *GraphHandler) NearestNode(c echo.Context) error {
	var lat, lng, radius float64
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		Float64("radius", &radius).
		BindError()
	if err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), err.Error())
	}

	nearest, found, err := h.routingUC.FindNearestNode(c.Request().Context(), usecase.Coordinate{Lat: lat, Lng: lng}, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !found {
		return response.HandleAppError(c, domainerrors.ErrNodeNotFound)
	}

	return response.Success(c, http.StatusOK, nearest)
}

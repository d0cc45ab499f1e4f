package handler

import (
	"github.com/flathunt/commute-service/internal/pkg/utils"
	"github.com/flathunt/commute-service/internal/pkg/validator"
	"github.com/flathunt/commute-service/internal/usecase"
	"github.com/flathunt/commute-service/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RouteHandler serves ad-hoc route resolution requests.
type RouteHandler struct {
	routesUC *usecase.PropertyRoutesUseCase
	logger   *zap.Logger
}

// NewRouteHandler creates a RouteHandler.
func NewRouteHandler(routesUC *usecase.PropertyRoutesUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routesUC: routesUC,
		logger:   logger,
	}
}

// ResolveRoutes resolves the best routes from a location to a POI set.
func (h *RouteHandler) ResolveRoutes(c *fiber.Ctx) error {
	var req dto.RoutesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	location, pois, err := req.ToDomain()
	if err != nil {
		return utils.SendError(c, err)
	}

	routes := h.routesUC.ResolveRoutes(c.Context(), location, pois)

	return utils.SendSuccess(c, dto.RoutesResponse{Routes: routes}, &utils.Meta{
		Total: len(routes),
	})
}

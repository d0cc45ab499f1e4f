package handler

import (
	"github.com/flathunt/commute-service/internal/pkg/utils"
	"github.com/flathunt/commute-service/internal/usecase"
	"github.com/flathunt/commute-service/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ValidationHandler serves property validation requests.
type ValidationHandler struct {
	validator *usecase.PropertyValidator
	logger    *zap.Logger
}

// NewValidationHandler creates a ValidationHandler.
func NewValidationHandler(validator *usecase.PropertyValidator, logger *zap.Logger) *ValidationHandler {
	return &ValidationHandler{
		validator: validator,
		logger:    logger,
	}
}

// Validate runs the rule engine on a property/criteria pair.
func (h *ValidationHandler) Validate(c *fiber.Ctx) error {
	var req dto.ValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	reasons := h.validator.Validate(&req.Property, &req.Criteria)

	return utils.SendSuccess(c, dto.ValidateResponse{
		Valid:   len(reasons) == 0,
		Reasons: reasons,
	}, nil)
}

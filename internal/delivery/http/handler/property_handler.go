package handler

import (
	"github.com/flathunt/commute-service/internal/domain"
	"github.com/flathunt/commute-service/internal/domain/repository"
	"github.com/flathunt/commute-service/internal/pkg/errors"
	"github.com/flathunt/commute-service/internal/pkg/utils"
	"github.com/flathunt/commute-service/internal/usecase"
	"github.com/flathunt/commute-service/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PropertyHandler serves the stored-property endpoints.
type PropertyHandler struct {
	properties repository.PropertyRepository
	routesUC   *usecase.PropertyRoutesUseCase
	validator  *usecase.PropertyValidator
	criteria   *domain.ValidationCriteria
	logger     *zap.Logger
}

// NewPropertyHandler creates a PropertyHandler. criteria is the run's
// configured acceptance policy.
func NewPropertyHandler(
	properties repository.PropertyRepository,
	routesUC *usecase.PropertyRoutesUseCase,
	validator *usecase.PropertyValidator,
	criteria *domain.ValidationCriteria,
	logger *zap.Logger,
) *PropertyHandler {
	return &PropertyHandler{
		properties: properties,
		routesUC:   routesUC,
		validator:  validator,
		criteria:   criteria,
		logger:     logger,
	}
}

// Create stores a new property, assigning it an ID and a persisted index.
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	property := req.Property
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}

	index, err := h.properties.NextIndex(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	property = property.WithPersistedIndex(index)

	if err := h.properties.Save(c.Context(), &property); err != nil {
		return utils.SendError(c, err)
	}

	h.logger.Info("Property stored",
		zap.String("property_id", property.ID.String()),
		zap.Int("index", index))

	return c.Status(fiber.StatusCreated).JSON(dto.PropertyResponse{Property: &property})
}

// Get returns a stored property with its current validation verdict.
func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	property, err := h.properties.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	reasons := h.validator.Validate(property, h.criteria)
	valid := len(reasons) == 0

	return utils.SendSuccess(c, dto.PropertyResponse{
		Property: property,
		Valid:    &valid,
		Reasons:  reasons,
		Summary:  property.Summary(),
	}, nil)
}

// List returns all stored properties.
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	properties, err := h.properties.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.PropertyListResponse{
		Properties: properties,
		Total:      len(properties),
	}, &utils.Meta{Total: len(properties)})
}

// Delete removes a stored property.
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.properties.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RefreshRoutes recomputes the routes of a stored property against the
// configured criteria and returns the verdict.
func (h *PropertyHandler) RefreshRoutes(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	property, err := h.routesUC.RefreshPropertyRoutes(c.Context(), id, h.criteria)
	if err != nil {
		return utils.SendError(c, err)
	}

	reasons := h.validator.Validate(property, h.criteria)
	valid := len(reasons) == 0

	return utils.SendSuccess(c, dto.PropertyResponse{
		Property: property,
		Valid:    &valid,
		Reasons:  reasons,
	}, &utils.Meta{Total: len(property.Routes)})
}

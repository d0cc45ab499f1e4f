package utils

import (
	"github.com/flathunt/commute-service/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	internal := errors.New(
		errors.ErrInternalServer.Code,
		errors.ErrInternalServer.Message,
		errors.ErrInternalServer.StatusCode,
	).WithDetails(map[string]any{"error": err.Error()})
	return c.Status(internal.StatusCode).JSON(ErrorResponse{
		Error: internal,
	})
}

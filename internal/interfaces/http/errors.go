package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/polyplus/inventory-api/internal/application/dto"
	"github.com/polyplus/inventory-api/internal/domain"
)

// respondError is the single mapping from domain outcomes to HTTP statuses.
// Validation and conflict errors carry a specific message; anything
// unexpected is logged and answered with an opaque "failed to <action>".
func respondError(c *fiber.Ctx, err error, action string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNegativeQuantity):
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrStoreExists):
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "ALREADY_EXISTS", Message: "store already exists"})
	case errors.Is(err, domain.ErrStoreNotFound):
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "store not found"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product SKU not found in this store"})
	case errors.Is(err, domain.ErrDuplicateSKU):
		return c.Status(fiber.StatusConflict).
			JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "SKU already exists in this store"})
	default:
		log.Error().Err(err).Str("action", action).Msg("request failed")
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to " + action})
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/polyplus/inventory-api/internal/application/dto"
	"github.com/polyplus/inventory-api/internal/application/usecase"
)

// StoreHandler handles store setup and owner lookup.
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler builds the handler.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// Create handles POST /stores: first-time store setup for an owner.
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.UID == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "missing required fields: uid and name"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "create store")
	}
	return c.JSON(out)
}

// GetByOwner handles GET /stores/by-user/:uid; 404 means the owner has no
// store yet and needs setup.
func (h *StoreHandler) GetByOwner(c *fiber.Ctx) error {
	out, err := h.uc.GetByOwner(c.Context(), c.Params("uid"))
	if err != nil {
		return respondError(c, err, "fetch store")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no store for this user"})
	}
	return c.JSON(out)
}

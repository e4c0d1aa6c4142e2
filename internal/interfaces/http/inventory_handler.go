package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/polyplus/inventory-api/internal/application/dto"
	"github.com/polyplus/inventory-api/internal/application/usecase"
)

// InventoryHandler handles the store search surface and product CRUD.
// It only translates between HTTP and the use cases; every business rule
// (SKU uniqueness, not-found distinctions, quantity guards) lives below.
type InventoryHandler struct {
	storeUC *usecase.StoreUseCase
	invUC   *usecase.InventoryUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(storeUC *usecase.StoreUseCase, invUC *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{storeUC: storeUC, invUC: invUC}
}

// ListStores handles GET /inventory?SKU=&name=.
func (h *InventoryHandler) ListStores(c *fiber.Ctx) error {
	out, err := h.storeUC.List(c.Context(), c.Query("SKU"), c.Query("name"))
	if err != nil {
		return respondError(c, err, "load inventory")
	}
	return c.JSON(out)
}

// GetMeta handles GET /inventory/:storeId — name and location only.
func (h *InventoryHandler) GetMeta(c *fiber.Ctx) error {
	out, err := h.storeUC.GetMeta(c.Context(), c.Params("storeId"))
	if err != nil {
		return respondError(c, err, "load store meta")
	}
	return c.JSON(out)
}

// Stats handles GET /inventory/:storeId/stats.
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	out, err := h.storeUC.Stats(c.Context(), c.Params("storeId"))
	if err != nil {
		return respondError(c, err, "load store stats")
	}
	return c.JSON(out)
}

// ListProducts handles GET /inventory/:storeId/products.
func (h *InventoryHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.invUC.ListProducts(c.Context(), c.Params("storeId"))
	if err != nil {
		return respondError(c, err, "load products")
	}
	return c.JSON(out)
}

// AddProduct handles POST /inventory/:storeId/products.
func (h *InventoryHandler) AddProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.invUC.AddProduct(c.Context(), c.Params("storeId"), in)
	if err != nil {
		return respondError(c, err, "add product")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveProduct handles DELETE /inventory/:storeId/products with {SKU} in the
// body. Store-missing and SKU-missing both answer 404 but with distinct
// messages.
func (h *InventoryHandler) RemoveProduct(c *fiber.Ctx) error {
	var in dto.RemoveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.SKU == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "SKU is required"})
	}
	out, err := h.invUC.RemoveProduct(c.Context(), c.Params("storeId"), in.SKU)
	if err != nil {
		return respondError(c, err, "remove product")
	}
	return c.JSON(out)
}

// paramSKU returns the :sku path parameter percent-decoded, so SKUs with
// spaces or other reserved characters stay addressable.
func paramSKU(c *fiber.Ctx) (string, error) {
	return url.PathUnescape(c.Params("sku"))
}

// UpdateProduct handles PATCH /inventory/:storeId/products/:sku. The path sku
// is the product's key before the update; a patch carrying a new SKU renames
// it.
func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	sku, err := paramSKU(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid SKU in path"})
	}
	out, err := h.invUC.UpdateProduct(c.Context(), c.Params("storeId"), sku, in)
	if err != nil {
		return respondError(c, err, "update product")
	}
	return c.JSON(out)
}

// AdjustQuantity handles PATCH /inventory/:storeId/products/:sku/quantity
// with a signed {delta}.
func (h *InventoryHandler) AdjustQuantity(c *fiber.Ctx) error {
	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Delta == nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "delta is required"})
	}
	sku, err := paramSKU(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid SKU in path"})
	}
	out, err := h.invUC.AdjustQuantity(c.Context(), c.Params("storeId"), sku, in.Delta.Int())
	if err != nil {
		return respondError(c, err, "update quantity")
	}
	return c.JSON(out)
}

// UpdatePrice handles PATCH /inventory/:storeId/products/:sku/price.
func (h *InventoryHandler) UpdatePrice(c *fiber.Ctx) error {
	var in dto.UpdatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	sku, err := paramSKU(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid SKU in path"})
	}
	out, err := h.invUC.UpdatePrice(c.Context(), c.Params("storeId"), sku, in.Price)
	if err != nil {
		return respondError(c, err, "update price")
	}
	return c.JSON(out)
}

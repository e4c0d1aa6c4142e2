package dto

import (
	"github.com/shopspring/decimal"

	"github.com/polyplus/inventory-api/internal/domain/entity"
)

// CreateProductRequest a product draft as the client sends it. Numeric fields
// accept numbers or numeric strings; the use case normalizes (trim, default 0,
// clamp negatives). Either total_quantity or its quantity alias is accepted,
// total_quantity winning when both are present.
type CreateProductRequest struct {
	Name             string          `json:"name"`
	SKU              string          `json:"SKU"`
	Price            decimal.Decimal `json:"price"`
	TotalQuantity    *FlexInt        `json:"total_quantity"`
	Quantity         *FlexInt        `json:"quantity"`
	QuantityOnFloor  FlexInt         `json:"quantity_on_floor"`
	QuantityInBack   FlexInt         `json:"quantity_in_back"`
	IncomingQuantity FlexInt         `json:"incoming_quantity"`
	Description      string          `json:"description"`
	ProductPhoto     string          `json:"product_photo"`
}

// TotalOrAlias resolves the total_quantity/quantity pair.
func (r CreateProductRequest) TotalOrAlias() int {
	if r.TotalQuantity != nil {
		return r.TotalQuantity.Int()
	}
	if r.Quantity != nil {
		return r.Quantity.Int()
	}
	return 0
}

// UpdateProductRequest partial update: nil means "leave unchanged". JSON null
// decodes to nil as well, so null and omitted are deliberately equivalent —
// clearing a text field requires an explicit empty string.
type UpdateProductRequest struct {
	Name             *string          `json:"name"`
	SKU              *string          `json:"SKU"`
	Price            *decimal.Decimal `json:"price"`
	TotalQuantity    *FlexInt         `json:"total_quantity"`
	Quantity         *FlexInt         `json:"quantity"`
	QuantityOnFloor  *FlexInt         `json:"quantity_on_floor"`
	QuantityInBack   *FlexInt         `json:"quantity_in_back"`
	IncomingQuantity *FlexInt         `json:"incoming_quantity"`
	Description      *string          `json:"description"`
	ProductPhoto     *string          `json:"product_photo"`
}

// Empty reports whether the patch carries no fields at all.
func (r UpdateProductRequest) Empty() bool {
	return r.Name == nil && r.SKU == nil && r.Price == nil &&
		r.TotalQuantity == nil && r.Quantity == nil &&
		r.QuantityOnFloor == nil && r.QuantityInBack == nil &&
		r.IncomingQuantity == nil && r.Description == nil && r.ProductPhoto == nil
}

// ProductResponse a normalized product. quantity mirrors total_quantity since
// the client reads either key.
type ProductResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	SKU              string          `json:"SKU"`
	Price            decimal.Decimal `json:"price"`
	TotalQuantity    int             `json:"total_quantity"`
	Quantity         int             `json:"quantity"`
	QuantityOnFloor  int             `json:"quantity_on_floor"`
	QuantityInBack   int             `json:"quantity_in_back"`
	IncomingQuantity int             `json:"incoming_quantity"`
	Description      string          `json:"description"`
	ProductPhoto     string          `json:"product_photo"`
}

// RemoveProductRequest body of the delete endpoint.
type RemoveProductRequest struct {
	SKU string `json:"SKU"`
}

// RemoveProductResponse confirms a removal.
type RemoveProductResponse struct {
	OK         bool   `json:"ok"`
	RemovedSKU string `json:"removedSKU"`
}

// AdjustQuantityRequest a signed delta applied to total_quantity.
type AdjustQuantityRequest struct {
	Delta *FlexInt `json:"delta"`
}

// QuantityResponse result of a delta adjustment.
type QuantityResponse struct {
	SKU           string `json:"SKU"`
	TotalQuantity int    `json:"total_quantity"`
}

// UpdatePriceRequest sets a new unit price.
type UpdatePriceRequest struct {
	Price *decimal.Decimal `json:"price"`
}

// PriceResponse result of a price update.
type PriceResponse struct {
	SKU   string          `json:"SKU"`
	Price decimal.Decimal `json:"price"`
}

// ToProductResponse maps the entity form.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		SKU:              p.SKU,
		Price:            p.Price,
		TotalQuantity:    p.TotalQuantity,
		Quantity:         p.TotalQuantity,
		QuantityOnFloor:  p.QuantityOnFloor,
		QuantityInBack:   p.QuantityInBack,
		IncomingQuantity: p.IncomingQuantity,
		Description:      p.Description,
		ProductPhoto:     p.PhotoRef,
	}
}

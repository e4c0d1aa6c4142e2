package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polyplus/inventory-api/internal/domain/entity"
)

// ProductRepository is the persistence port for products within a store.
// Products are matched by (storeID, SKU) for reads and by surrogate ID for
// writes; SKU is trimmed, case-sensitive and unique per store.
type ProductRepository interface {
	ListByStore(ctx context.Context, storeID string) ([]*entity.Product, error)
	GetBySKU(ctx context.Context, storeID, sku string) (*entity.Product, error)
	Add(ctx context.Context, product *entity.Product) error
	// Update rewrites all mutable fields of the row identified by product.ID.
	Update(ctx context.Context, product *entity.Product) error
	// RemoveBySKU reports whether a matching product was removed, so callers
	// can distinguish a missing SKU from a missing store.
	RemoveBySKU(ctx context.Context, storeID, sku string) (bool, error)
	// AdjustQuantity atomically adds delta to total_quantity in a single
	// conditional statement — never read-then-write — and returns the new
	// total. A delta that would drive the total negative must fail with
	// domain.ErrNegativeQuantity leaving the row unchanged; a missing product
	// fails with domain.ErrProductNotFound.
	AdjustQuantity(ctx context.Context, storeID, sku string, delta int) (int, error)
	// UpdatePrice sets only the price of the matching product.
	UpdatePrice(ctx context.Context, storeID, sku string, price decimal.Decimal) (*entity.Product, error)
}

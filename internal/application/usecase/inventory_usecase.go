package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/polyplus/inventory-api/internal/application/dto"
	"github.com/polyplus/inventory-api/internal/domain"
	"github.com/polyplus/inventory-api/internal/domain/entity"
	"github.com/polyplus/inventory-api/internal/domain/repository"
)

// InventoryUseCase product CRUD within one store. Stateless; SKU uniqueness
// and the store/product not-found distinction are enforced here, not in the
// HTTP layer. Apart from AdjustQuantity, concurrent mutations of the same
// store are last-writer-wins — an accepted policy, not a defect.
type InventoryUseCase struct {
	stores   repository.StoreRepository
	products repository.ProductRepository
}

// NewInventoryUseCase builds the use case.
func NewInventoryUseCase(stores repository.StoreRepository, products repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{stores: stores, products: products}
}

// ListProducts returns one store's inventory in insertion order.
func (uc *InventoryUseCase) ListProducts(ctx context.Context, storeID string) ([]dto.ProductResponse, error) {
	if err := uc.requireStore(ctx, storeID); err != nil {
		return nil, err
	}
	products, err := uc.products.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *dto.ToProductResponse(p))
	}
	return items, nil
}

// AddProduct normalizes a draft (trim strings, default numerics to 0, clamp
// negatives) and appends it to the store's inventory. Fails with
// ErrInvalidInput when name or SKU is empty after trimming and with
// ErrDuplicateSKU when the SKU is already taken in this store.
func (uc *InventoryUseCase) AddProduct(ctx context.Context, storeID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	sku := strings.TrimSpace(in.SKU)
	if name == "" || sku == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	existing, err := uc.products.GetBySKU(ctx, storeID, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSKU
	}

	price := in.Price
	if price.IsNegative() {
		price = decimal.Zero
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		StoreID:          storeID,
		SKU:              sku,
		Name:             name,
		Price:            price,
		TotalQuantity:    clampQty(in.TotalOrAlias()),
		QuantityOnFloor:  clampQty(in.QuantityOnFloor.Int()),
		QuantityInBack:   clampQty(in.QuantityInBack.Int()),
		IncomingQuantity: clampQty(in.IncomingQuantity.Int()),
		Description:      strings.TrimSpace(in.Description),
		PhotoRef:         strings.TrimSpace(in.ProductPhoto),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	// The unique (store_id, sku) index backstops the lookup above when two
	// adds race on the same SKU.
	if err := uc.products.Add(ctx, product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// RemoveProduct deletes the product matching sku exactly (trimmed,
// case-sensitive). A missing store and a missing SKU are reported as distinct
// errors.
func (uc *InventoryUseCase) RemoveProduct(ctx context.Context, storeID, sku string) (*dto.RemoveProductResponse, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireStore(ctx, storeID); err != nil {
		return nil, err
	}
	removed, err := uc.products.RemoveBySKU(ctx, storeID, sku)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, domain.ErrProductNotFound
	}
	return &dto.RemoveProductResponse{OK: true, RemovedSKU: sku}, nil
}

// UpdateProduct applies a partial update to the product matched by oldSKU.
// Absent fields stay untouched; an empty patch is a no-op returning the
// current state. A patch carrying a different SKU renames the product, which
// is then only reachable under the new SKU.
func (uc *InventoryUseCase) UpdateProduct(ctx context.Context, storeID, oldSKU string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	oldSKU = strings.TrimSpace(oldSKU)
	if err := uc.requireStore(ctx, storeID); err != nil {
		return nil, err
	}
	product, err := uc.products.GetBySKU(ctx, storeID, oldSKU)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Empty() {
		return dto.ToProductResponse(product), nil
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if sku == "" {
			return nil, domain.ErrInvalidInput
		}
		if sku != product.SKU {
			taken, err := uc.products.GetBySKU(ctx, storeID, sku)
			if err != nil {
				return nil, err
			}
			if taken != nil {
				return nil, domain.ErrDuplicateSKU
			}
			product.SKU = sku
		}
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.TotalQuantity != nil {
		product.TotalQuantity = clampQty(in.TotalQuantity.Int())
	} else if in.Quantity != nil {
		product.TotalQuantity = clampQty(in.Quantity.Int())
	}
	if in.QuantityOnFloor != nil {
		product.QuantityOnFloor = clampQty(in.QuantityOnFloor.Int())
	}
	if in.QuantityInBack != nil {
		product.QuantityInBack = clampQty(in.QuantityInBack.Int())
	}
	if in.IncomingQuantity != nil {
		product.IncomingQuantity = clampQty(in.IncomingQuantity.Int())
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.ProductPhoto != nil {
		product.PhotoRef = strings.TrimSpace(*in.ProductPhoto)
	}

	product.UpdatedAt = time.Now()
	// Written by surrogate id, so the rename above cannot land on a row a
	// concurrent request re-keyed in the meantime.
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// AdjustQuantity atomically adds delta (which may be negative) to the
// product's total quantity. The repository performs the add as one
// conditional statement, so concurrent deltas on the same SKU never lose
// updates; a delta that would go negative is rejected with
// ErrNegativeQuantity and the stored value stays unchanged.
func (uc *InventoryUseCase) AdjustQuantity(ctx context.Context, storeID, sku string, delta int) (*dto.QuantityResponse, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireStore(ctx, storeID); err != nil {
		return nil, err
	}
	newTotal, err := uc.products.AdjustQuantity(ctx, storeID, sku, delta)
	if err != nil {
		return nil, err
	}
	return &dto.QuantityResponse{SKU: sku, TotalQuantity: newTotal}, nil
}

// UpdatePrice sets the unit price of the matching product.
func (uc *InventoryUseCase) UpdatePrice(ctx context.Context, storeID, sku string, price *decimal.Decimal) (*dto.PriceResponse, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" || price == nil || price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireStore(ctx, storeID); err != nil {
		return nil, err
	}
	product, err := uc.products.UpdatePrice(ctx, storeID, sku, *price)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return &dto.PriceResponse{SKU: product.SKU, Price: product.Price}, nil
}

func (uc *InventoryUseCase) requireStore(ctx context.Context, storeID string) error {
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrStoreNotFound
	}
	return nil
}

func clampQty(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

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

// StoreUseCase store lifecycle and lookup: one store per owner, created once
// on first setup, read on every session bootstrap.
type StoreUseCase struct {
	stores   repository.StoreRepository
	products repository.ProductRepository
}

// NewStoreUseCase builds the use case.
func NewStoreUseCase(stores repository.StoreRepository, products repository.ProductRepository) *StoreUseCase {
	return &StoreUseCase{stores: stores, products: products}
}

// Create sets up the owner's store with an empty inventory. Fails with
// ErrInvalidInput when uid or name is empty after trimming, and with
// ErrStoreExists when the owner already has one.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	uid := strings.TrimSpace(in.UID)
	name := strings.TrimSpace(in.Name)
	if uid == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.stores.GetByOwnerUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrStoreExists
	}

	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		OwnerUID:  uid,
		Name:      name,
		Location:  dto.ToLocationEntity(in.Location),
		CreatedAt: now,
		UpdatedAt: now,
	}
	// The unique index on owner_uid backstops the check above against a
	// concurrent setup request for the same owner.
	if err := uc.stores.Create(ctx, store); err != nil {
		return nil, err
	}
	return dto.ToStoreResponse(store, nil), nil
}

// GetByOwner returns the owner's store with its inventory, or (nil, nil) when
// the owner has none — a routine outcome the caller turns into "needs setup".
func (uc *StoreUseCase) GetByOwner(ctx context.Context, ownerUID string) (*dto.StoreResponse, error) {
	store, err := uc.stores.GetByOwnerUID(ctx, strings.TrimSpace(ownerUID))
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	products, err := uc.products.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToStoreResponse(store, products), nil
}

// GetMeta returns the name/location projection of one store.
func (uc *StoreUseCase) GetMeta(ctx context.Context, storeID string) (*dto.StoreMetaResponse, error) {
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return &dto.StoreMetaResponse{Name: store.Name, Location: dto.ToLocationDTO(store.Location)}, nil
}

// List returns every store with its inventory. A non-empty skuFilter keeps
// only products whose SKU matches exactly; a non-empty nameFilter keeps
// products whose name contains the filter, case-insensitively.
func (uc *StoreUseCase) List(ctx context.Context, skuFilter, nameFilter string) (*dto.StoreListResponse, error) {
	skuFilter = strings.TrimSpace(skuFilter)
	nameFilter = strings.TrimSpace(nameFilter)

	stores, err := uc.stores.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, store := range stores {
		products, err := uc.products.ListByStore(ctx, store.ID)
		if err != nil {
			return nil, err
		}
		if skuFilter != "" || nameFilter != "" {
			products = filterProducts(products, skuFilter, nameFilter)
		}
		out = append(out, *dto.ToStoreResponse(store, products))
	}
	return &dto.StoreListResponse{StoreList: out}, nil
}

// Stats aggregates one store's inventory: line count, total units on hand and
// the retail value of the stock (Σ price × total_quantity).
func (uc *StoreUseCase) Stats(ctx context.Context, storeID string) (*dto.StoreStatsResponse, error) {
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	products, err := uc.products.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	stats := &dto.StoreStatsResponse{ProductCount: len(products), InventoryValue: decimal.Zero}
	for _, p := range products {
		stats.TotalUnits += p.TotalQuantity
		stats.InventoryValue = stats.InventoryValue.Add(
			p.Price.Mul(decimal.NewFromInt(int64(p.TotalQuantity))),
		)
	}
	return stats, nil
}

func filterProducts(products []*entity.Product, skuFilter, nameFilter string) []*entity.Product {
	kept := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if skuFilter != "" && p.SKU != skuFilter {
			continue
		}
		if nameFilter != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(nameFilter)) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

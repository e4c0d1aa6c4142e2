package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyplus/inventory-api/internal/application/dto"
	"github.com/polyplus/inventory-api/internal/application/usecase"
	"github.com/polyplus/inventory-api/internal/domain"
	"github.com/polyplus/inventory-api/internal/infrastructure/memory"
)

func newStoreUC() (*usecase.StoreUseCase, *usecase.InventoryUseCase) {
	stores := memory.NewStoreRepository()
	products := memory.NewProductRepository()
	return usecase.NewStoreUseCase(stores, products), usecase.NewInventoryUseCase(stores, products)
}

func TestCreateStore_SecondCreateConflicts(t *testing.T) {
	uc, _ := newStoreUC()
	ctx := context.Background()

	first, err := uc.Create(ctx, dto.CreateStoreRequest{UID: "u1", Name: "Shop"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "u1", first.OwnerUID)
	assert.Empty(t, first.Inventory)

	// Same owner again, even with another name.
	_, err = uc.Create(ctx, dto.CreateStoreRequest{UID: "u1", Name: "Other Shop"})
	assert.ErrorIs(t, err, domain.ErrStoreExists)
}

func TestCreateStore_RequiresUIDAndName(t *testing.T) {
	uc, _ := newStoreUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateStoreRequest{UID: "  ", Name: "Shop"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateStoreRequest{UID: "u1", Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateStore_TrimsAndKeepsLocation(t *testing.T) {
	uc, _ := newStoreUC()

	out, err := uc.Create(context.Background(), dto.CreateStoreRequest{
		UID:      " u1 ",
		Name:     "  Poly Shop  ",
		Location: &dto.LocationDTO{City: "San Luis Obispo", State: "CA"},
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", out.OwnerUID)
	assert.Equal(t, "Poly Shop", out.Name)
	require.NotNil(t, out.Location)
	assert.Equal(t, "CA", out.Location.State)
}

func TestGetByOwner_NilWhenAbsent(t *testing.T) {
	uc, _ := newStoreUC()

	out, err := uc.GetByOwner(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, out, "a missing store is a routine outcome, not an error")
}

func TestGetMeta_ExcludesInventory(t *testing.T) {
	uc, inv := newStoreUC()
	ctx := context.Background()

	store, err := uc.Create(ctx, dto.CreateStoreRequest{UID: "u1", Name: "Shop"})
	require.NoError(t, err)
	_, err = inv.AddProduct(ctx, store.ID, dto.CreateProductRequest{Name: "Tea", SKU: "T-1", ProductPhoto: "uploads/t.png"})
	require.NoError(t, err)

	meta, err := uc.GetMeta(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shop", meta.Name)

	_, err = uc.GetMeta(ctx, "missing-id")
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestListStores_Filters(t *testing.T) {
	uc, inv := newStoreUC()
	ctx := context.Background()

	store, err := uc.Create(ctx, dto.CreateStoreRequest{UID: "u1", Name: "Shop"})
	require.NoError(t, err)
	for _, p := range []dto.CreateProductRequest{
		{Name: "Green Tea", SKU: "GT-16-001"},
		{Name: "Black Tea", SKU: "BT-16-002"},
		{Name: "Mug", SKU: "MG-01"},
	} {
		_, err = inv.AddProduct(ctx, store.ID, p)
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, "GT-16-001", "")
	require.NoError(t, err)
	require.Len(t, out.StoreList, 1)
	require.Len(t, out.StoreList[0].Inventory, 1)
	assert.Equal(t, "GT-16-001", out.StoreList[0].Inventory[0].SKU)

	out, err = uc.List(ctx, "", "tea")
	require.NoError(t, err)
	require.Len(t, out.StoreList, 1)
	assert.Len(t, out.StoreList[0].Inventory, 2, "name filter matches case-insensitively")

	out, err = uc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, out.StoreList[0].Inventory, 3)
}

func TestStats_AggregatesInventory(t *testing.T) {
	uc, inv := newStoreUC()
	ctx := context.Background()

	store, err := uc.Create(ctx, dto.CreateStoreRequest{UID: "u1", Name: "Shop"})
	require.NoError(t, err)

	ten := dto.FlexInt(10)
	three := dto.FlexInt(3)
	_, err = inv.AddProduct(ctx, store.ID, dto.CreateProductRequest{
		Name: "Tea", SKU: "T-1", Price: decimal.RequireFromString("5.50"), TotalQuantity: &ten,
	})
	require.NoError(t, err)
	_, err = inv.AddProduct(ctx, store.ID, dto.CreateProductRequest{
		Name: "Mug", SKU: "M-1", Price: decimal.RequireFromString("12"), TotalQuantity: &three,
	})
	require.NoError(t, err)

	stats, err := uc.Stats(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ProductCount)
	assert.Equal(t, 13, stats.TotalUnits)
	assert.True(t, stats.InventoryValue.Equal(decimal.RequireFromString("91")),
		"5.50*10 + 12*3 = 91, got %s", stats.InventoryValue)
}

// Package memory holds in-memory implementations of the persistence ports,
// used by tests and local development without a database. Semantics mirror
// the postgres adapters: copies in and out, unique owner and (store, SKU)
// constraints, and an atomic conditional quantity adjustment.
package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/polyplus/inventory-api/internal/domain"
	"github.com/polyplus/inventory-api/internal/domain/entity"
	"github.com/polyplus/inventory-api/internal/domain/repository"
)

var (
	_ repository.StoreRepository   = (*StoreRepo)(nil)
	_ repository.ProductRepository = (*ProductRepo)(nil)
)

// StoreRepo in-memory StoreRepository.
type StoreRepo struct {
	mu     sync.Mutex
	stores []*entity.Store
}

// NewStoreRepository builds an empty store repo.
func NewStoreRepository() *StoreRepo {
	return &StoreRepo{}
}

func (r *StoreRepo) Create(_ context.Context, store *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.stores {
		if s.OwnerUID == store.OwnerUID {
			return domain.ErrStoreExists
		}
	}
	cp := *store
	r.stores = append(r.stores, &cp)
	return nil
}

func (r *StoreRepo) GetByID(_ context.Context, id string) (*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.stores {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *StoreRepo) GetByOwnerUID(_ context.Context, ownerUID string) (*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.stores {
		if s.OwnerUID == ownerUID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *StoreRepo) ListAll(_ context.Context) ([]*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Store, 0, len(r.stores))
	for _, s := range r.stores {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

// ProductRepo in-memory ProductRepository. Products keep insertion order per
// store.
type ProductRepo struct {
	mu       sync.Mutex
	products map[string][]*entity.Product
}

// NewProductRepository builds an empty product repo.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{products: make(map[string][]*entity.Product)}
}

func (r *ProductRepo) ListByStore(_ context.Context, storeID string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.products[storeID]
	out := make([]*entity.Product, 0, len(items))
	for _, p := range items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *ProductRepo) GetBySKU(_ context.Context, storeID, sku string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p := r.findBySKU(storeID, sku); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *ProductRepo) Add(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findBySKU(product.StoreID, product.SKU) != nil {
		return domain.ErrDuplicateSKU
	}
	cp := *product
	r.products[product.StoreID] = append(r.products[product.StoreID], &cp)
	return nil
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.products[product.StoreID]
	for i, p := range items {
		if p.ID == product.ID {
			if taken := r.findBySKU(product.StoreID, product.SKU); taken != nil && taken.ID != product.ID {
				return domain.ErrDuplicateSKU
			}
			cp := *product
			items[i] = &cp
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (r *ProductRepo) RemoveBySKU(_ context.Context, storeID, sku string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.products[storeID]
	for i, p := range items {
		if p.SKU == sku {
			r.products[storeID] = append(items[:i:i], items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *ProductRepo) AdjustQuantity(_ context.Context, storeID, sku string, delta int) (int, error) {
	// Check-and-increment under one lock, like the conditional UPDATE in the
	// postgres adapter.
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findBySKU(storeID, sku)
	if p == nil {
		return 0, domain.ErrProductNotFound
	}
	if p.TotalQuantity+delta < 0 {
		return 0, domain.ErrNegativeQuantity
	}
	p.TotalQuantity += delta
	return p.TotalQuantity, nil
}

func (r *ProductRepo) UpdatePrice(_ context.Context, storeID, sku string, price decimal.Decimal) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findBySKU(storeID, sku)
	if p == nil {
		return nil, nil
	}
	p.Price = price
	cp := *p
	return &cp, nil
}

func (r *ProductRepo) findBySKU(storeID, sku string) *entity.Product {
	for _, p := range r.products[storeID] {
		if p.SKU == sku {
			return p
		}
	}
	return nil
}

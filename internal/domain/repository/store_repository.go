package repository

import (
	"context"

	"github.com/polyplus/inventory-api/internal/domain/entity"
)

// StoreRepository is the persistence port for Store. Lookups that find nothing
// return (nil, nil); callers decide whether that is a routine miss or an error.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	GetByOwnerUID(ctx context.Context, ownerUID string) (*entity.Store, error)
	// ListAll returns every store, inventories excluded.
	ListAll(ctx context.Context) ([]*entity.Store, error)
}

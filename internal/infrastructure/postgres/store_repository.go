package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/polyplus/inventory-api/internal/domain"
	"github.com/polyplus/inventory-api/internal/domain/entity"
	"github.com/polyplus/inventory-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implements the StoreRepository port over PostgreSQL. The location
// sub-structure is flattened into nullable columns; all four NULL means the
// store has no address on file.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository builds the persistence adapter (pass a pool or tx).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persists a new store with an empty inventory. The unique index on
// owner_uid turns a concurrent double-setup into domain.ErrStoreExists.
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (id, owner_uid, name, street, city, state, zip, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	street, city, state, zip := locationColumns(store.Location)
	_, err := r.q.Exec(ctx, query,
		store.ID, store.OwnerUID, store.Name, street, city, state, zip,
		store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrStoreExists
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID fetches one store by id, inventory excluded.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetByOwnerUID fetches the owner's store, inventory excluded.
func (r *StoreRepo) GetByOwnerUID(ctx context.Context, ownerUID string) (*entity.Store, error) {
	return r.getOne(ctx, `WHERE owner_uid = $1`, ownerUID)
}

// ListAll returns every store in creation order.
func (r *StoreRepo) ListAll(ctx context.Context) ([]*entity.Store, error) {
	query := `
		SELECT id, owner_uid, name, street, city, state, zip, created_at, updated_at
		FROM stores ORDER BY created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var stores []*entity.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *StoreRepo) getOne(ctx context.Context, where string, arg any) (*entity.Store, error) {
	query := `
		SELECT id, owner_uid, name, street, city, state, zip, created_at, updated_at
		FROM stores ` + where
	s, err := scanStore(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return s, nil
}

func scanStore(row pgx.Row) (*entity.Store, error) {
	var (
		s                        entity.Store
		street, city, state, zip *string
	)
	err := row.Scan(&s.ID, &s.OwnerUID, &s.Name, &street, &city, &state, &zip, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if street != nil || city != nil || state != nil || zip != nil {
		s.Location = &entity.Location{
			Street: deref(street),
			City:   deref(city),
			State:  deref(state),
			Zip:    deref(zip),
		}
	}
	return &s, nil
}

func locationColumns(l *entity.Location) (street, city, state, zip *string) {
	if l == nil {
		return nil, nil, nil, nil
	}
	return &l.Street, &l.City, &l.State, &l.Zip
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

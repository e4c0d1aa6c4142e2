package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/polyplus/inventory-api/internal/domain"
	"github.com/polyplus/inventory-api/internal/domain/entity"
	"github.com/polyplus/inventory-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, store_id, sku, name, price, total_quantity,
	quantity_on_floor, quantity_in_back, incoming_quantity, description,
	product_photo, created_at, updated_at`

// ProductRepo implements the ProductRepository port over PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter (pass a pool or tx).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ListByStore returns one store's products in insertion order.
func (r *ProductRepo) ListByStore(ctx context.Context, storeID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE store_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetBySKU fetches one product by store and exact SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, storeID, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE store_id = $1 AND sku = $2`
	p, err := scanProduct(r.q.QueryRow(ctx, query, storeID, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// Add appends a product to the store's inventory. The position sequence
// preserves insertion order for listings.
func (r *ProductRepo) Add(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, store_id, sku, name, price, total_quantity,
			quantity_on_floor, quantity_in_back, incoming_quantity, description,
			product_photo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.StoreID, p.SKU, p.Name, p.Price, p.TotalQuantity,
		p.QuantityOnFloor, p.QuantityInBack, p.IncomingQuantity, p.Description,
		p.PhotoRef, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update rewrites all mutable fields of the row identified by p.ID, including
// a renamed SKU.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET sku = $2, name = $3, price = $4, total_quantity = $5,
			quantity_on_floor = $6, quantity_in_back = $7, incoming_quantity = $8,
			description = $9, product_photo = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.SKU, p.Name, p.Price, p.TotalQuantity,
		p.QuantityOnFloor, p.QuantityInBack, p.IncomingQuantity,
		p.Description, p.PhotoRef, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// RemoveBySKU deletes the matching product, reporting whether a row went away.
func (r *ProductRepo) RemoveBySKU(ctx context.Context, storeID, sku string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM products WHERE store_id = $1 AND sku = $2`,
		storeID, sku,
	)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AdjustQuantity adds delta to total_quantity in one conditional UPDATE — the
// guard keeps the total non-negative and the whole read-modify-write happens
// inside the statement, so concurrent deltas on the same SKU serialize at the
// row without losing updates.
func (r *ProductRepo) AdjustQuantity(ctx context.Context, storeID, sku string, delta int) (int, error) {
	var newTotal int
	err := r.q.QueryRow(ctx, `
		UPDATE products
		SET total_quantity = total_quantity + $3, updated_at = now()
		WHERE store_id = $1 AND sku = $2 AND total_quantity + $3 >= 0
		RETURNING total_quantity`,
		storeID, sku, delta,
	).Scan(&newTotal)
	if err == nil {
		return newTotal, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("adjust quantity: %w", err)
	}

	// No row matched: either the product doesn't exist or the guard rejected
	// a negative result. Look the product up to tell the two apart.
	p, lookupErr := r.GetBySKU(ctx, storeID, sku)
	if lookupErr != nil {
		return 0, lookupErr
	}
	if p == nil {
		return 0, domain.ErrProductNotFound
	}
	return 0, domain.ErrNegativeQuantity
}

// UpdatePrice sets only the price, returning the updated product or nil when
// no product matches.
func (r *ProductRepo) UpdatePrice(ctx context.Context, storeID, sku string, price decimal.Decimal) (*entity.Product, error) {
	query := `
		UPDATE products SET price = $3, updated_at = now()
		WHERE store_id = $1 AND sku = $2
		RETURNING ` + productColumns
	p, err := scanProduct(r.q.QueryRow(ctx, query, storeID, sku, price))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update price: %w", err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.StoreID, &p.SKU, &p.Name, &p.Price, &p.TotalQuantity,
		&p.QuantityOnFloor, &p.QuantityInBack, &p.IncomingQuantity,
		&p.Description, &p.PhotoRef, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one inventory line of a store. SKU is unique within the store
// (trimmed, case-sensitive) and may be renamed; ID is the stable surrogate key
// used for writes so a rename cannot race a concurrent lookup.
//
// TotalQuantity is the authoritative count. The floor/back split is a client
// convention (see domain/inventory.Reconcile); the server persists whatever
// non-negative integers it is given.
//
// PhotoRef stores the durable image reference — an absolute URL or an object
// storage key — never a temporary signed URL, which expires.
type Product struct {
	ID               string
	StoreID          string
	SKU              string
	Name             string
	Price            decimal.Decimal
	TotalQuantity    int
	QuantityOnFloor  int
	QuantityInBack   int
	IncomingQuantity int
	Description      string
	PhotoRef         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

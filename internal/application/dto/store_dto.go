package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polyplus/inventory-api/internal/domain/entity"
)

// LocationDTO optional store address, all fields free-form.
type LocationDTO struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

// CreateStoreRequest input for store setup. UID is the authenticated owner's
// identifier from the identity provider.
type CreateStoreRequest struct {
	UID      string       `json:"uid"`
	Name     string       `json:"name"`
	Location *LocationDTO `json:"location"`
}

// StoreResponse a store with its inventory.
type StoreResponse struct {
	ID        string            `json:"id"`
	OwnerUID  string            `json:"owner_uid"`
	Name      string            `json:"name"`
	Location  *LocationDTO      `json:"location"`
	Inventory []ProductResponse `json:"inventory"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// StoreMetaResponse the lightweight projection used by the store header:
// name and location only, inventory excluded.
type StoreMetaResponse struct {
	Name     string       `json:"name"`
	Location *LocationDTO `json:"location"`
}

// StoreListResponse wrapper for the store search surface.
type StoreListResponse struct {
	StoreList []StoreResponse `json:"store_list"`
}

// StoreStatsResponse aggregate counts for one store's inventory.
// InventoryValue is Σ price × total_quantity.
type StoreStatsResponse struct {
	ProductCount   int             `json:"product_count"`
	TotalUnits     int             `json:"total_units"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}

// ToLocationDTO converts the entity form, keeping nil for "no address".
func ToLocationDTO(l *entity.Location) *LocationDTO {
	if l == nil {
		return nil
	}
	return &LocationDTO{Street: l.Street, City: l.City, State: l.State, Zip: l.Zip}
}

// ToLocationEntity converts the request form, keeping nil for "no address".
func ToLocationEntity(l *LocationDTO) *entity.Location {
	if l == nil {
		return nil
	}
	return &entity.Location{Street: l.Street, City: l.City, State: l.State, Zip: l.Zip}
}

// ToStoreResponse maps a store and its (possibly empty) inventory.
func ToStoreResponse(s *entity.Store, products []*entity.Product) *StoreResponse {
	if s == nil {
		return nil
	}
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *ToProductResponse(p))
	}
	return &StoreResponse{
		ID:        s.ID,
		OwnerUID:  s.OwnerUID,
		Name:      s.Name,
		Location:  ToLocationDTO(s.Location),
		Inventory: items,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

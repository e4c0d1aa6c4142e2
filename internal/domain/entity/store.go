package entity

import "time"

// Location is the optional street address of a store. All fields are optional
// free-form strings; nothing downstream parses them.
type Location struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

// Store is a single owner's storefront. Each authenticated user owns at most
// one store (unique index on OwnerUID); a store is created once and never
// deleted, only its inventory changes.
type Store struct {
	ID        string
	OwnerUID  string
	Name      string
	Location  *Location
	CreatedAt time.Time
	UpdatedAt time.Time
}

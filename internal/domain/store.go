package domain

import "time"

// StoreStatus represents moderation states for a store.
type StoreStatus string

const (
	StoreStatusPending StoreStatus = "PENDING"
	StoreStatusActive  StoreStatus = "ACTIVE"
	StoreStatusBlocked StoreStatus = "BLOCKED"
)

// StoreContact holds public contact details for a store.
type StoreContact struct {
	Address string
	Phone   string
	Email   string
}

// Store is a tenant storefront. Each store has exactly one registered
// admin; the application rejects a second store for the same admin.
type Store struct {
	ID           string
	Brand        string
	Description  string
	StoreType    string
	Status       StoreStatus
	StoreAdminID string
	Contact      StoreContact
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

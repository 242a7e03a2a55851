package events

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStoreCreated   EventType = "store_created"
	EventStoreModerated EventType = "store_moderated"
	EventProductCreated EventType = "product_created"
	EventProductDeleted EventType = "product_deleted"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   domain.UserRole `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	StoreID   string      `json:"store_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StoreCreatedPayload payload.
type StoreCreatedPayload struct {
	Brand     string             `json:"brand"`
	StoreType string             `json:"store_type"`
	Status    domain.StoreStatus `json:"status"`
}

// StoreModeratedPayload payload.
type StoreModeratedPayload struct {
	OldStatus domain.StoreStatus `json:"old_status"`
	NewStatus domain.StoreStatus `json:"new_status"`
}

// ProductCreatedPayload payload.
type ProductCreatedPayload struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
}

// ProductDeletedPayload payload.
type ProductDeletedPayload struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
}

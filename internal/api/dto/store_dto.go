package dto

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// StoreContactPayload nested contact details.
type StoreContactPayload struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// StoreRequest payload for store create/update.
type StoreRequest struct {
	Brand       string               `json:"brand"`
	Description string               `json:"description"`
	StoreType   string               `json:"store_type"`
	Contact     *StoreContactPayload `json:"contact"`
}

// ModerateStoreRequest payload for moderation.
type ModerateStoreRequest struct {
	Status string `json:"status"`
}

// StoreResponse is the public view of a store.
type StoreResponse struct {
	ID           string              `json:"id"`
	Brand        string              `json:"brand"`
	Description  string              `json:"description,omitempty"`
	StoreType    string              `json:"store_type,omitempty"`
	Status       string              `json:"status"`
	StoreAdminID string              `json:"store_admin_id"`
	Contact      StoreContactPayload `json:"contact"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// ToStoreResponse maps a domain store.
func ToStoreResponse(store *domain.Store) StoreResponse {
	return StoreResponse{
		ID:           store.ID,
		Brand:        store.Brand,
		Description:  store.Description,
		StoreType:    store.StoreType,
		Status:       string(store.Status),
		StoreAdminID: store.StoreAdminID,
		Contact: StoreContactPayload{
			Address: store.Contact.Address,
			Phone:   store.Contact.Phone,
			Email:   store.Contact.Email,
		},
		CreatedAt: store.CreatedAt,
		UpdatedAt: store.UpdatedAt,
	}
}

// ToStoreResponses maps a slice of stores.
func ToStoreResponses(stores []*domain.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, store := range stores {
		out = append(out, ToStoreResponse(store))
	}
	return out
}

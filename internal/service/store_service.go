package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// StoreService coordinates store lifecycle operations.
type StoreService struct {
	stores     repository.StoreRepository
	dispatcher events.Dispatcher
}

// NewStoreService builds the service.
func NewStoreService(stores repository.StoreRepository, dispatcher events.Dispatcher) *StoreService {
	return &StoreService{stores: stores, dispatcher: dispatcher}
}

// StoreInput carries store creation and update fields.
type StoreInput struct {
	Brand       string
	Description string
	StoreType   string
	Contact     domain.StoreContact
}

// CreateStore registers a new store for the given admin. A user may
// administer at most one store; a second create is rejected.
func (s *StoreService) CreateStore(ctx context.Context, user *domain.User, input StoreInput) (*domain.Store, error) {
	if _, err := s.stores.GetByAdminID(ctx, user.ID); err == nil {
		return nil, apperrors.NewConflict("user already has a store", map[string]any{"user_id": user.ID})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	store := &domain.Store{
		Brand:        input.Brand,
		Description:  input.Description,
		StoreType:    input.StoreType,
		Status:       domain.StoreStatusPending,
		StoreAdminID: user.ID,
		Contact:      input.Contact,
	}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventStoreCreated, store.ID, user, events.StoreCreatedPayload{
		Brand:     store.Brand,
		StoreType: store.StoreType,
		Status:    store.Status,
	})
	return store, nil
}

// GetStoreByID fetches a single store.
func (s *StoreService) GetStoreByID(ctx context.Context, id string) (*domain.Store, error) {
	store, err := s.stores.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("store", map[string]any{"id": id})
		}
		return nil, err
	}
	return store, nil
}

// ListStores returns every store.
func (s *StoreService) ListStores(ctx context.Context) ([]*domain.Store, error) {
	return s.stores.List(ctx)
}

// GetStoreByAdmin returns the store administered by the given user.
func (s *StoreService) GetStoreByAdmin(ctx context.Context, user *domain.User) (*domain.Store, error) {
	store, err := s.stores.GetByAdminID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("store", map[string]any{"admin_id": user.ID})
		}
		return nil, err
	}
	return store, nil
}

// GetStoreByEmployee returns the store the given employee is affiliated with.
func (s *StoreService) GetStoreByEmployee(ctx context.Context, user *domain.User) (*domain.Store, error) {
	if user.StoreID == nil {
		return nil, apperrors.NewNotFound("store", map[string]any{"employee_id": user.ID})
	}
	return s.GetStoreByID(ctx, *user.StoreID)
}

// UpdateStore applies updates after an authority check against the
// target store.
func (s *StoreService) UpdateStore(ctx context.Context, user *domain.User, id string, input StoreInput) (*domain.Store, error) {
	store, err := s.GetStoreByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CheckStoreAuthority(user, store); err != nil {
		return nil, err
	}

	store.Brand = input.Brand
	store.Description = input.Description
	if input.StoreType != "" {
		store.StoreType = input.StoreType
	}
	if input.Contact != (domain.StoreContact{}) {
		store.Contact = input.Contact
	}
	if err := s.stores.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// DeleteStore removes a store after an authority check.
func (s *StoreService) DeleteStore(ctx context.Context, user *domain.User, id string) error {
	store, err := s.GetStoreByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.CheckStoreAuthority(user, store); err != nil {
		return err
	}
	return s.stores.Delete(ctx, store.ID)
}

// ModerateStore changes a store's moderation status. The route for this
// operation is restricted to global admins.
func (s *StoreService) ModerateStore(ctx context.Context, actor *domain.User, id string, status domain.StoreStatus) (*domain.Store, error) {
	store, err := s.GetStoreByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := store.Status
	store.Status = status
	if err := s.stores.Update(ctx, store); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventStoreModerated, store.ID, actor, events.StoreModeratedPayload{
		OldStatus: oldStatus,
		NewStatus: status,
	})
	return store, nil
}

func (s *StoreService) publish(ctx context.Context, eventType events.EventType, storeID string, actor *domain.User, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:      uuid.NewString(),
		Type:    eventType,
		StoreID: storeID,
		Actor: events.Actor{
			UserID: actor.ID,
			Email:  actor.Email,
			Role:   actor.Role,
		},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CategoryService coordinates category CRUD. Every mutation passes the
// store authority check.
type CategoryService struct {
	categories repository.CategoryRepository
	stores     repository.StoreRepository
}

// NewCategoryService builds the service.
func NewCategoryService(categories repository.CategoryRepository, stores repository.StoreRepository) *CategoryService {
	return &CategoryService{categories: categories, stores: stores}
}

// CreateCategory adds a category to a store.
func (s *CategoryService) CreateCategory(ctx context.Context, user *domain.User, storeID, name string) (*domain.Category, error) {
	store, err := s.storeByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if err := auth.CheckStoreAuthority(user, store); err != nil {
		return nil, err
	}

	category := &domain.Category{Name: name, StoreID: store.ID}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListByStore returns a store's categories.
func (s *CategoryService) ListByStore(ctx context.Context, storeID string) ([]*domain.Category, error) {
	return s.categories.ListByStoreID(ctx, storeID)
}

// UpdateCategory renames a category after an authority check against
// its owning store.
func (s *CategoryService) UpdateCategory(ctx context.Context, user *domain.User, id, name string) (*domain.Category, error) {
	category, store, err := s.categoryWithStore(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CheckStoreAuthority(user, store); err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ModerateCategory applies a moderation rename, same authority rules as
// a regular update.
func (s *CategoryService) ModerateCategory(ctx context.Context, user *domain.User, id, name string) (*domain.Category, error) {
	return s.UpdateCategory(ctx, user, id, name)
}

// DeleteCategory removes a category after an authority check.
func (s *CategoryService) DeleteCategory(ctx context.Context, user *domain.User, id string) error {
	category, store, err := s.categoryWithStore(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.CheckStoreAuthority(user, store); err != nil {
		return err
	}
	return s.categories.Delete(ctx, category.ID)
}

func (s *CategoryService) categoryWithStore(ctx context.Context, id string) (*domain.Category, *domain.Store, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("category", map[string]any{"id": id})
		}
		return nil, nil, err
	}
	store, err := s.storeByID(ctx, category.StoreID)
	if err != nil {
		return nil, nil, err
	}
	return category, store, nil
}

func (s *CategoryService) storeByID(ctx context.Context, id string) (*domain.Store, error) {
	store, err := s.stores.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("store", map[string]any{"id": id})
		}
		return nil, err
	}
	return store, nil
}

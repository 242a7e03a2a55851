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
	"github.com/spec-kit/storefront-service/internal/persistence"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// ProductService coordinates product CRUD, the public catalog reads and
// the Redis-backed listing cache.
type ProductService struct {
	products   repository.ProductRepository
	stores     repository.StoreRepository
	categories repository.CategoryRepository
	cache      *persistence.CatalogCache
	dispatcher events.Dispatcher
}

// ProductDependencies bundles collaborators for the product service.
type ProductDependencies struct {
	ProductRepo  repository.ProductRepository
	StoreRepo    repository.StoreRepository
	CategoryRepo repository.CategoryRepository
	Cache        *persistence.CatalogCache
	Dispatcher   events.Dispatcher
}

// ProductInput carries product creation and update fields.
type ProductInput struct {
	Name         string
	Description  string
	SKU          string
	MRP          float64
	SellingPrice float64
	Brand        string
	Image        string
	StoreID      string
	CategoryID   *string
}

// NewProductService builds the service.
func NewProductService(deps ProductDependencies) *ProductService {
	return &ProductService{
		products:   deps.ProductRepo,
		stores:     deps.StoreRepo,
		categories: deps.CategoryRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// CreateProduct adds a product to a store after an authority check.
func (s *ProductService) CreateProduct(ctx context.Context, user *domain.User, input ProductInput) (*domain.Product, error) {
	store, err := s.storeByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if err := auth.CheckStoreAuthority(user, store); err != nil {
		return nil, err
	}
	if input.CategoryID != nil {
		category, err := s.categories.GetByID(ctx, *input.CategoryID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("category", map[string]any{"id": *input.CategoryID})
			}
			return nil, err
		}
		if category.StoreID != store.ID {
			return nil, apperrors.NewValidationError("category belongs to a different store", nil)
		}
	}

	product := &domain.Product{
		Name:         input.Name,
		Description:  input.Description,
		SKU:          input.SKU,
		MRP:          input.MRP,
		SellingPrice: input.SellingPrice,
		Brand:        input.Brand,
		Image:        input.Image,
		StoreID:      store.ID,
		CategoryID:   input.CategoryID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	_ = s.cache.Invalidate(ctx, store.ID)
	s.publish(ctx, events.EventProductCreated, store.ID, user, events.ProductCreatedPayload{
		ProductID: product.ID,
		Name:      product.Name,
		SKU:       product.SKU,
	})
	return product, nil
}

// UpdateProduct applies updates after an authority check against the
// owning store.
func (s *ProductService) UpdateProduct(ctx context.Context, user *domain.User, id string, input ProductInput) (*domain.Product, error) {
	product, store, err := s.productWithStore(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CheckStoreAuthority(user, store); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.SKU = input.SKU
	product.MRP = input.MRP
	product.SellingPrice = input.SellingPrice
	product.Brand = input.Brand
	product.Image = input.Image
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	_ = s.cache.Invalidate(ctx, store.ID)
	return product, nil
}

// DeleteProduct removes a product after an authority check.
func (s *ProductService) DeleteProduct(ctx context.Context, user *domain.User, id string) error {
	product, store, err := s.productWithStore(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.CheckStoreAuthority(user, store); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, product.ID); err != nil {
		return err
	}

	_ = s.cache.Invalidate(ctx, store.ID)
	s.publish(ctx, events.EventProductDeleted, store.ID, user, events.ProductDeletedPayload{
		ProductID: product.ID,
		Name:      product.Name,
	})
	return nil
}

// ListByStore returns a store's products, serving from the catalog
// cache between mutations.
func (s *ProductService) ListByStore(ctx context.Context, storeID string) ([]*domain.Product, error) {
	if cached, err := s.cache.GetProducts(ctx, storeID); err == nil {
		return cached, nil
	}

	products, err := s.products.ListByStoreID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetProducts(ctx, storeID, products)
	return products, nil
}

// SearchByKeyword searches a store's products by name or brand.
func (s *ProductService) SearchByKeyword(ctx context.Context, storeID, keyword string) ([]*domain.Product, error) {
	return s.products.SearchByKeyword(ctx, storeID, keyword)
}

func (s *ProductService) productWithStore(ctx context.Context, id string) (*domain.Product, *domain.Store, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("product", map[string]any{"id": id})
		}
		return nil, nil, err
	}
	store, err := s.storeByID(ctx, product.StoreID)
	if err != nil {
		return nil, nil, err
	}
	return product, store, nil
}

func (s *ProductService) storeByID(ctx context.Context, id string) (*domain.Store, error) {
	store, err := s.stores.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("store", map[string]any{"id": id})
		}
		return nil, err
	}
	return store, nil
}

func (s *ProductService) publish(ctx context.Context, eventType events.EventType, storeID string, actor *domain.User, payload interface{}) {
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

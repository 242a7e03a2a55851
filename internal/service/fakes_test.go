package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// In-memory repository fakes. They mirror the pgx contract the real
// implementations follow: absent rows surface as pgx.ErrNoRows.

type fakeUserRepo struct {
	byID    map[string]*domain.User
	updates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.updates++
	clone := *user
	clone.UpdatedAt = time.Now()
	r.byID[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.byID {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, user := range r.byID {
		clone := *user
		out = append(out, &clone)
	}
	return out, nil
}

type fakeStoreRepo struct {
	byID map[string]*domain.Store
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{byID: make(map[string]*domain.Store)}
}

func (r *fakeStoreRepo) Create(_ context.Context, store *domain.Store) error {
	store.ID = uuid.NewString()
	store.CreatedAt = time.Now()
	store.UpdatedAt = store.CreatedAt
	clone := *store
	r.byID[store.ID] = &clone
	return nil
}

func (r *fakeStoreRepo) Update(_ context.Context, store *domain.Store) error {
	if _, ok := r.byID[store.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *store
	clone.UpdatedAt = time.Now()
	r.byID[store.ID] = &clone
	return nil
}

func (r *fakeStoreRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeStoreRepo) GetByID(_ context.Context, id string) (*domain.Store, error) {
	store, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *store
	return &clone, nil
}

func (r *fakeStoreRepo) GetByAdminID(_ context.Context, adminID string) (*domain.Store, error) {
	for _, store := range r.byID {
		if store.StoreAdminID == adminID {
			clone := *store
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeStoreRepo) List(_ context.Context) ([]*domain.Store, error) {
	out := make([]*domain.Store, 0, len(r.byID))
	for _, store := range r.byID {
		clone := *store
		out = append(out, &clone)
	}
	return out, nil
}

type fakeCategoryRepo struct {
	byID map[string]*domain.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: make(map[string]*domain.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	category.ID = uuid.NewString()
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	clone := *category
	r.byID[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	if _, ok := r.byID[category.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *category
	clone.UpdatedAt = time.Now()
	r.byID[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	category, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *category
	return &clone, nil
}

func (r *fakeCategoryRepo) ListByStoreID(_ context.Context, storeID string) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, category := range r.byID {
		if category.StoreID == storeID {
			clone := *category
			out = append(out, &clone)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	byID map[string]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[string]*domain.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	product.ID = uuid.NewString()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	clone := *product
	r.byID[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	if _, ok := r.byID[product.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *product
	clone.UpdatedAt = time.Now()
	r.byID[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	product, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) ListByStoreID(_ context.Context, storeID string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, product := range r.byID {
		if product.StoreID == storeID {
			clone := *product
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) SearchByKeyword(_ context.Context, storeID, keyword string) ([]*domain.Product, error) {
	keyword = strings.ToLower(keyword)
	var out []*domain.Product
	for _, product := range r.byID {
		if product.StoreID != storeID {
			continue
		}
		if strings.Contains(strings.ToLower(product.Name), keyword) ||
			strings.Contains(strings.ToLower(product.Brand), keyword) {
			clone := *product
			out = append(out, &clone)
		}
	}
	return out, nil
}

package service

import (
	"context"
	"testing"

	"github.com/spec-kit/storefront-service/internal/domain"
)

func productFixture(t *testing.T) (context.Context, *ProductService, *fakeCategoryRepo, *domain.Store, *domain.User) {
	t.Helper()

	stores := newFakeStoreRepo()
	categories := newFakeCategoryRepo()
	products := newFakeProductRepo()
	svc := NewProductService(ProductDependencies{
		ProductRepo:  products,
		StoreRepo:    stores,
		CategoryRepo: categories,
	})

	ctx := context.Background()
	owner := &domain.User{ID: "owner-1", Email: "owner@x.com", Role: domain.RoleCustomer}
	store := &domain.Store{Brand: "Molla", StoreAdminID: owner.ID, Status: domain.StoreStatusActive}
	if err := stores.Create(ctx, store); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return ctx, svc, categories, store, owner
}

func TestCreateProduct(t *testing.T) {
	ctx, svc, _, store, owner := productFixture(t)

	product, err := svc.CreateProduct(ctx, owner, ProductInput{
		Name:         "Runner",
		SKU:          "SKU-1",
		MRP:          100,
		SellingPrice: 80,
		Brand:        "Molla",
		StoreID:      store.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.StoreID != store.ID {
		t.Fatalf("product store = %q, want %q", product.StoreID, store.ID)
	}

	listed, err := svc.ListByStore(ctx, store.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 product, got %d", len(listed))
	}
}

func TestCreateProductStrangerForbidden(t *testing.T) {
	ctx, svc, _, store, _ := productFixture(t)

	stranger := &domain.User{ID: "stranger-1", Role: domain.RoleCustomer}
	_, err := svc.CreateProduct(ctx, stranger, ProductInput{Name: "Runner", SKU: "SKU-1", StoreID: store.ID})
	if code := domainCode(t, err); code != "FORBIDDEN" {
		t.Fatalf("expected FORBIDDEN, got %s", code)
	}
}

func TestCreateProductCategoryFromOtherStoreRejected(t *testing.T) {
	ctx, svc, categories, store, owner := productFixture(t)

	foreign := &domain.Category{Name: "Foreign", StoreID: "other-store"}
	if err := categories.Create(ctx, foreign); err != nil {
		t.Fatalf("seed category: %v", err)
	}

	_, err := svc.CreateProduct(ctx, owner, ProductInput{
		Name:       "Runner",
		SKU:        "SKU-1",
		StoreID:    store.ID,
		CategoryID: &foreign.ID,
	})
	if code := domainCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %s", code)
	}
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	ctx, svc, _, store, owner := productFixture(t)

	product, err := svc.CreateProduct(ctx, owner, ProductInput{Name: "Runner", SKU: "SKU-1", StoreID: store.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	stranger := &domain.User{ID: "stranger-1", Role: domain.RoleCustomer}
	if _, err := svc.UpdateProduct(ctx, stranger, product.ID, ProductInput{Name: "Hacked", SKU: "SKU-1"}); err == nil {
		t.Fatal("stranger update should be forbidden")
	}

	updated, err := svc.UpdateProduct(ctx, owner, product.ID, ProductInput{
		Name:         "Runner v2",
		SKU:          "SKU-1",
		SellingPrice: 70,
	})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Name != "Runner v2" || updated.SellingPrice != 70 {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := svc.DeleteProduct(ctx, stranger, product.ID); err == nil {
		t.Fatal("stranger delete should be forbidden")
	}
	if err := svc.DeleteProduct(ctx, owner, product.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

func TestSearchByKeyword(t *testing.T) {
	ctx, svc, _, store, owner := productFixture(t)

	seed := []ProductInput{
		{Name: "Trail Runner", SKU: "SKU-1", Brand: "Peak", StoreID: store.ID},
		{Name: "City Loafer", SKU: "SKU-2", Brand: "Urban", StoreID: store.ID},
	}
	for _, input := range seed {
		if _, err := svc.CreateProduct(ctx, owner, input); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	found, err := svc.SearchByKeyword(ctx, store.ID, "runner")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 || found[0].Name != "Trail Runner" {
		t.Fatalf("search result = %+v", found)
	}
}

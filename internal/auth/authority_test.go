package auth

import (
	"errors"
	"testing"

	"github.com/spec-kit/storefront-service/internal/domain"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

func TestCheckStoreAuthority(t *testing.T) {
	store := &domain.Store{ID: "store-1", StoreAdminID: "owner-1"}

	cases := []struct {
		name    string
		user    *domain.User
		store   *domain.Store
		allowed bool
	}{
		{"store admin role passes any store", &domain.User{ID: "other", Role: domain.RoleStoreAdmin}, store, true},
		{"store manager role passes any store", &domain.User{ID: "other", Role: domain.RoleStoreManager}, store, true},
		{"global admin passes", &domain.User{ID: "other", Role: domain.RoleAdmin}, store, true},
		{"owner passes regardless of role", &domain.User{ID: "owner-1", Role: domain.RoleCustomer}, store, true},
		{"customer stranger rejected", &domain.User{ID: "stranger", Role: domain.RoleCustomer}, store, false},
		{"employee stranger rejected", &domain.User{ID: "stranger", Role: domain.RoleEmployee}, store, false},
		{"missing store always rejected", &domain.User{ID: "owner-1", Role: domain.RoleStoreAdmin}, nil, false},
		{"missing user rejected", nil, store, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckStoreAuthority(tc.user, tc.store)
			if tc.allowed {
				if err != nil {
					t.Fatalf("expected allow, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected Forbidden, got nil")
			}
			var domainErr *apperrors.DomainError
			if !errors.As(err, &domainErr) || domainErr.Code != "FORBIDDEN" {
				t.Fatalf("expected FORBIDDEN code, got %v", err)
			}
		})
	}
}

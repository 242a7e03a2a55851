package auth

import (
	"github.com/spec-kit/storefront-service/internal/domain"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CheckStoreAuthority decides whether a user may mutate a resource
// owned by the given store. Elevated roles pass regardless of which
// store owns the resource; everyone else passes only when they are the
// store's registered admin. A missing store always fails: there is
// nothing to authorize against.
func CheckStoreAuthority(user *domain.User, store *domain.Store) error {
	if user == nil || store == nil {
		return apperrors.NewForbidden("you don't have permission to access this resource")
	}

	switch user.Role {
	case domain.RoleAdmin, domain.RoleStoreAdmin, domain.RoleStoreManager:
		return nil
	}

	if user.ID == store.StoreAdminID {
		return nil
	}
	return apperrors.NewForbidden("you don't have permission to access this resource")
}

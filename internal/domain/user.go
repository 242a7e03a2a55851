package domain

import "time"

// UserRole enumerates the fixed set of roles a user can hold.
type UserRole string

const (
	RoleAdmin        UserRole = "ROLE_ADMIN"
	RoleStoreAdmin   UserRole = "ROLE_STORE_ADMIN"
	RoleStoreManager UserRole = "ROLE_STORE_MANAGER"
	RoleEmployee     UserRole = "ROLE_EMPLOYEE"
	RoleCustomer     UserRole = "ROLE_CUSTOMER"
)

// ValidRole reports whether the role belongs to the known set.
func ValidRole(role UserRole) bool {
	switch role {
	case RoleAdmin, RoleStoreAdmin, RoleStoreManager, RoleEmployee, RoleCustomer:
		return true
	default:
		return false
	}
}

// User is the domain model for every account in the system, from global
// admins down to customers. Store employees carry a store affiliation.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Phone        string
	Role         UserRole
	StoreID      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  time.Time
}

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

// UserService resolves principals to stored accounts.
type UserService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, tokenMgr *auth.TokenManager) *UserService {
	return &UserService{users: users, tokenMgr: tokenMgr}
}

// GetUserFromToken decodes a raw bearer token and loads the account it
// identifies.
func (s *UserService) GetUserFromToken(ctx context.Context, token string) (*domain.User, error) {
	email, _, err := s.tokenMgr.Decode(token)
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid token")
	}
	return s.GetByEmail(ctx, email)
}

// ResolvePrincipal maps a request principal back to its stored account.
func (s *UserService) ResolvePrincipal(ctx context.Context, principal *auth.Principal) (*domain.User, error) {
	if principal == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return s.GetByEmail(ctx, principal.Email)
}

// GetByEmail looks up an account by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"email": email})
		}
		return nil, err
	}
	return user, nil
}

// GetByID looks up an account by id.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}
	return user, nil
}

// List returns all accounts.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

func newAuthService(repo *fakeUserRepo) *AuthService {
	cfg := config.AuthConfig{
		JWTSecret:     "test-secret-with-enough-entropy-32b",
		TokenTTLHours: 24,
		BcryptCost:    4,
	}
	return NewAuthService(cfg, repo, zap.NewNop())
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	return domainErr.Code
}

func TestSignUpAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	user, token, _, err := svc.SignUp(ctx, SignUpInput{
		FullName: "Alice",
		Email:    "a@x.com",
		Password: "Secret1!",
		Role:     domain.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.PasswordHash == "Secret1!" {
		t.Fatal("password must be stored hashed")
	}

	subject, role, err := svc.TokenManager().Decode(token)
	if err != nil {
		t.Fatalf("decode signup token: %v", err)
	}
	if subject != "a@x.com" || role != string(domain.RoleEmployee) {
		t.Fatalf("token claims = (%q, %q), want (a@x.com, %s)", subject, role, domain.RoleEmployee)
	}

	loggedIn, loginToken, _, err := svc.Login(ctx, "a@x.com", "Secret1!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Fatalf("login returned user %q, want %q", loggedIn.ID, user.ID)
	}
	if subject, _, err := svc.TokenManager().Decode(loginToken); err != nil || subject != "a@x.com" {
		t.Fatalf("login token decode = (%q, %v)", subject, err)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	first, _, _, err := svc.SignUp(ctx, SignUpInput{FullName: "Alice", Email: "a@x.com", Password: "Secret1!", Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("first signup: %v", err)
	}

	_, _, _, err = svc.SignUp(ctx, SignUpInput{FullName: "Mallory", Email: "a@x.com", Password: "Other2!", Role: domain.RoleCustomer})
	if code := domainCode(t, err); code != "ALREADY_EXISTS" {
		t.Fatalf("expected ALREADY_EXISTS, got %s", code)
	}

	// The existing record must be untouched.
	stored, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("get stored: %v", err)
	}
	if stored.FullName != "Alice" || stored.PasswordHash != first.PasswordHash {
		t.Fatal("duplicate signup mutated the existing record")
	}
	if repo.updates != 0 {
		t.Fatalf("duplicate signup performed %d updates", repo.updates)
	}
}

func TestSignUpAdminRoleForbidden(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, _, _, err := svc.SignUp(context.Background(), SignUpInput{
		FullName: "Eve",
		Email:    "eve@x.com",
		Password: "Secret1!",
		Role:     domain.RoleAdmin,
	})
	if code := domainCode(t, err); code != "FORBIDDEN_ROLE" {
		t.Fatalf("expected FORBIDDEN_ROLE, got %s", code)
	}
}

func TestSignUpUnknownRoleRejected(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, _, _, err := svc.SignUp(context.Background(), SignUpInput{
		FullName: "Eve",
		Email:    "eve@x.com",
		Password: "Secret1!",
		Role:     domain.UserRole("ROLE_WIZARD"),
	})
	if code := domainCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %s", code)
	}
}

func TestLoginUniformInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	if _, _, _, err := svc.SignUp(ctx, SignUpInput{FullName: "Alice", Email: "a@x.com", Password: "Secret1!", Role: domain.RoleCustomer}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, _, _, wrongPassErr := svc.Login(ctx, "a@x.com", "wrong")
	_, _, _, unknownErr := svc.Login(ctx, "nobody@x.com", "whatever")

	if wrongPassErr == nil || unknownErr == nil {
		t.Fatal("both logins should fail")
	}

	// Enumeration resistance: identical code and message for both.
	var wrongPass, unknown *apperrors.DomainError
	if !errors.As(wrongPassErr, &wrongPass) || !errors.As(unknownErr, &unknown) {
		t.Fatalf("expected DomainErrors, got %v / %v", wrongPassErr, unknownErr)
	}
	if wrongPass.Code != "INVALID_CREDENTIALS" || unknown.Code != "INVALID_CREDENTIALS" {
		t.Fatalf("codes = %s / %s, want INVALID_CREDENTIALS for both", wrongPass.Code, unknown.Code)
	}
	if wrongPass.Message != unknown.Message {
		t.Fatalf("messages differ: %q vs %q", wrongPass.Message, unknown.Message)
	}
}

func TestLoginUpdatesLastLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	user, _, _, err := svc.SignUp(ctx, SignUpInput{FullName: "Alice", Email: "a@x.com", Password: "Secret1!", Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	before := user.LastLoginAt

	loggedIn, _, _, err := svc.Login(ctx, "a@x.com", "Secret1!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.LastLoginAt.Before(before) {
		t.Fatal("login should refresh last_login_at")
	}
	if repo.updates != 1 {
		t.Fatalf("expected 1 persisted update, got %d", repo.updates)
	}
}

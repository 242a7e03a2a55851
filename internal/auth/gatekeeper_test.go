package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/domain"
)

type principalProbe struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email"`
	Role          string `json:"role"`
}

func newGatekeeperApp(t *testing.T, tm *TokenManager) *fiber.App {
	t.Helper()

	app := fiber.New()
	gk := NewGatekeeper(tm, zap.NewNop())
	app.Get("/probe", gk.Handle, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return c.JSON(principalProbe{})
		}
		return c.JSON(principalProbe{
			Authenticated: true,
			Email:         principal.Email,
			Role:          string(principal.Role),
		})
	})
	return app
}

func probe(t *testing.T, app *fiber.App, authHeader string) principalProbe {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("gatekeeper must never reject; got status %d", resp.StatusCode)
	}

	var out principalProbe
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestGatekeeperMissingHeaderIsAnonymous(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	app := newGatekeeperApp(t, tm)

	if got := probe(t, app, ""); got.Authenticated {
		t.Fatalf("expected anonymous, got %+v", got)
	}
}

func TestGatekeeperValidTokenSetsPrincipal(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	app := newGatekeeperApp(t, tm)

	token, _, err := tm.Issue("a@x.com", "EMPLOYEE")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got := probe(t, app, "Bearer "+token)
	if !got.Authenticated {
		t.Fatal("expected principal to be set")
	}
	if got.Email != "a@x.com" {
		t.Fatalf("expected email a@x.com got %q", got.Email)
	}
	if got.Role != string(domain.RoleEmployee) {
		t.Fatalf("expected normalized role %s got %q", domain.RoleEmployee, got.Role)
	}
}

func TestGatekeeperInvalidTokenDegradesToAnonymous(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	app := newGatekeeperApp(t, tm)

	otherTM := NewTokenManager("other-secret", time.Hour)
	forged, _, err := otherTM.Issue("a@x.com", "ADMIN")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	for name, header := range map[string]string{
		"wrong signature": "Bearer " + forged,
		"garbage":         "Bearer garbage",
	} {
		if got := probe(t, app, header); got.Authenticated {
			t.Fatalf("%s: expected anonymous, got %+v", name, got)
		}
	}
}

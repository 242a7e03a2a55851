package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/domain"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller for one request. It is
// materialized from a validated token and never persisted.
type Principal struct {
	Email string
	Role  domain.UserRole
}

// Gatekeeper resolves bearer tokens into principals once per request.
//
// Contract: a missing header leaves the request anonymous, and so does
// any decode failure. The gatekeeper never rejects a request itself;
// route guards downstream decide whether a principal is required.
type Gatekeeper struct {
	tokens *TokenManager
	logger *zap.Logger
}

// NewGatekeeper constructs the middleware.
func NewGatekeeper(tokens *TokenManager, logger *zap.Logger) *Gatekeeper {
	return &Gatekeeper{tokens: tokens, logger: logger}
}

// Handle extracts and validates the Authorization header, attaching a
// Principal to the request context on success.
func (g *Gatekeeper) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Next()
	}

	subject, role, err := g.tokens.Decode(authHeader)
	if err != nil {
		switch {
		case errors.Is(err, ErrTokenExpired):
			g.logger.Info("expired token, proceeding anonymous", zap.String("path", c.Path()))
		case errors.Is(err, ErrTokenSignature):
			g.logger.Warn("token signature mismatch, proceeding anonymous", zap.String("path", c.Path()))
		default:
			g.logger.Warn("malformed token, proceeding anonymous", zap.String("path", c.Path()))
		}
		return c.Next()
	}

	c.Locals(principalKey, &Principal{
		Email: subject,
		Role:  NormalizeRole(role),
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kezig/logistics-service/internal/domain"
	apperrors "github.com/kezig/logistics-service/pkg/util/errorutil"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "access_token"

const principalKey = "auth_principal"

// Identity is a resolved caller.
type Identity struct {
	Username string
	Role     domain.Role
}

// Resolver turns a raw token into an identity. It must reject tokens that are
// cryptographically valid but no longer the subject's live session.
type Resolver interface {
	Resolve(token string) (Identity, error)
}

// Middleware extracts the session cookie, resolves the caller and stores the
// identity for downstream handlers.
type Middleware struct {
	resolver Resolver
}

// NewMiddleware constructs middleware over a resolver.
func NewMiddleware(resolver Resolver) *Middleware {
	return &Middleware{resolver: resolver}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := c.Cookies(CookieName)
	if token == "" {
		return apperrors.NewUnauthorized("not logged in")
	}

	identity, err := m.resolver.Resolve(token)
	if err != nil {
		return apperrors.NewUnauthorized("invalid or revoked session")
	}

	c.Locals(principalKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated caller.
func IdentityFromContext(c *fiber.Ctx) (Identity, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return Identity{}, false
	}
	identity, ok := val.(Identity)
	return identity, ok
}

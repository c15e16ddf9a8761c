package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kezig/logistics-service/internal/domain"
	apperrors "github.com/kezig/logistics-service/pkg/util/errorutil"
)

// RequireRole returns a guard that passes only callers whose resolved role is
// in the allowed set. It must run after Middleware.Handle; a request with no
// identity is unauthenticated, one with a disallowed role is forbidden.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("not logged in")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[identity.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

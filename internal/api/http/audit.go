package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kezig/logistics-service/internal/auth"
	"github.com/kezig/logistics-service/internal/domain"
	"github.com/kezig/logistics-service/internal/events"
)

// identityResolver is the slice of the session authority the interceptor
// needs: resolution that can never fail.
type identityResolver interface {
	BestEffortResolve(token string) auth.Identity
}

// AuditInterceptor records one operation log entry per request before any
// authorization runs. Identity extraction is best-effort; a missing or bad
// cookie simply yields the anonymous guest identity. The request always
// proceeds regardless of audit outcome.
func AuditInterceptor(resolver identityResolver, dispatcher events.Dispatcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := resolver.BestEffortResolve(c.Cookies(auth.CookieName))

		// fiber buffers the body internally, so reading it here does not
		// consume it for downstream handlers.
		entry := &domain.OperationLog{
			Username:  identity.Username,
			Role:      identity.Role,
			Path:      c.Path(),
			Method:    c.Method(),
			IPAddress: c.IP(),
			Payload:   string(c.Body()),
		}
		_ = dispatcher.Publish(c.UserContext(), events.Event{
			Type:      events.EventOperationObserved,
			Operation: entry,
		})

		return c.Next()
	}
}

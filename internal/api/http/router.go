package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kezig/logistics-service/internal/api/http/handlers"
	"github.com/kezig/logistics-service/internal/auth"
	"github.com/kezig/logistics-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Sessions       *handlers.SessionHandler
	Users          *handlers.UsersHandler
	Waybills       *handlers.WaybillsHandler
	Trackings      *handlers.TrackingsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. User management is admin-only; waybill
// and tracking operations are open to every authenticated operator role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Sessions.Login)
	app.Post("/refresh-token", cfg.Sessions.Refresh)
	app.Post("/logout", cfg.Sessions.Logout)

	users := app.Group("/admin/users",
		cfg.AuthMiddleware.Handle,
		auth.RequireRole(domain.RoleAdmin),
	)
	users.Post("/add", cfg.Users.Add)
	users.Post("/delete", cfg.Users.Delete)
	users.Post("/update-role", cfg.Users.UpdateRole)

	operatorRoles := auth.RequireRole(domain.RoleAdmin, domain.RoleManager, domain.RoleStaff)

	waybills := app.Group("/admin_waybills", cfg.AuthMiddleware.Handle, operatorRoles)
	waybills.Post("/", cfg.Waybills.Create)
	waybills.Put("/:waybill_number", cfg.Waybills.Update)
	waybills.Delete("/:waybill_number", cfg.Waybills.Delete)

	trackings := app.Group("/admin_trackings", cfg.AuthMiddleware.Handle, operatorRoles)
	trackings.Post("/", cfg.Trackings.Create)
	trackings.Get("/:waybill_number", cfg.Trackings.ListByWaybill)
	trackings.Put("/:tracking_id", cfg.Trackings.Update)
	trackings.Delete("/:tracking_id", cfg.Trackings.Delete)
}

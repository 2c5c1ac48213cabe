package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yvonlcy/wanderlust-api/internal/api/http/handlers"
	"github.com/yvonlcy/wanderlust-api/internal/auth"
	"github.com/yvonlcy/wanderlust-api/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Members        *handlers.MembersHandler
	Operators      *handlers.OperatorsHandler
	Profile        *handlers.ProfileHandler
	Hotels         *handlers.HotelsHandler
	Messages       *handlers.MessagesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	members := app.Group("/members")
	members.Post("/register", cfg.Members.Register)
	members.Post("/login", cfg.Members.Login)
	members.Post("/refresh-token", cfg.Members.RefreshToken)

	// Favourites and photo are member self-service only.
	memberSelf := members.Group("/:id",
		cfg.AuthMiddleware.Handle,
		auth.RequireRole(domain.RoleMember),
		auth.RequireSelf("id"),
	)
	memberSelf.Post("/favourites", cfg.Members.AddFavourite)
	memberSelf.Get("/favourites", cfg.Members.ListFavourites)
	memberSelf.Delete("/favourites/:hotelId", cfg.Members.RemoveFavourite)
	memberSelf.Post("/photo", cfg.Members.UploadPhoto)

	operators := app.Group("/operators")
	operators.Post("/register", cfg.Operators.Register)
	operators.Post("/login", cfg.Operators.Login)

	app.Get("/profile", cfg.AuthMiddleware.Handle, auth.RequireRole(), cfg.Profile.Get)

	hotels := app.Group("/hotels")
	hotels.Get("/", cfg.Hotels.List)
	hotels.Get("/:id", cfg.Hotels.Get)
	hotels.Post("/", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleOperator), cfg.Hotels.Create)
	hotels.Put("/:id", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleOperator), cfg.Hotels.Update)
	hotels.Delete("/:id", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleOperator), cfg.Hotels.Delete)

	messages := app.Group("/messages", cfg.AuthMiddleware.Handle, auth.RequireRole())
	messages.Post("/", cfg.Messages.Send)
	messages.Post("/:id/reply", cfg.Messages.Reply)
	messages.Get("/", cfg.Messages.List)
	messages.Delete("/:id", cfg.Messages.Delete)
}

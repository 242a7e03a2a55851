package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Users      *handlers.UsersHandler
	Stores     *handlers.StoresHandler
	Categories *handlers.CategoriesHandler
	Products   *handlers.ProductsHandler
	Gatekeeper *auth.Gatekeeper
}

// RegisterRoutes wires HTTP routes. The gatekeeper runs on every /api
// request; it only populates the principal, the per-route guards below
// decide whether one is required.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.SignUp)
	authGroup.Post("/login", cfg.Auth.Login)

	api := app.Group("/api", cfg.Gatekeeper.Handle)

	users := api.Group("/users")
	users.Get("/profile", auth.RequireAuthenticated(), cfg.Users.Profile)
	users.Get("/", auth.RequireRole(domain.RoleAdmin), cfg.Users.List)
	users.Get("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Users.GetByID)

	stores := api.Group("/stores")
	stores.Post("/", auth.RequireAuthenticated(), cfg.Stores.Create)
	stores.Get("/", auth.RequireAuthenticated(), cfg.Stores.List)
	stores.Get("/admin", auth.RequireAuthenticated(), cfg.Stores.GetByAdmin)
	stores.Get("/employee", auth.RequireAuthenticated(), cfg.Stores.GetByEmployee)
	stores.Get("/:id", auth.RequireAuthenticated(), cfg.Stores.GetByID)
	stores.Put("/:id/moderate", auth.RequireRole(domain.RoleAdmin), cfg.Stores.Moderate)
	stores.Put("/:id", auth.RequireAuthenticated(), cfg.Stores.Update)
	stores.Delete("/:id", auth.RequireAuthenticated(), cfg.Stores.Delete)

	categories := api.Group("/categories")
	categories.Post("/", auth.RequireAuthenticated(), cfg.Categories.Create)
	categories.Get("/store/:storeId", auth.RequireAuthenticated(), cfg.Categories.ListByStore)
	categories.Put("/:id/moderate", auth.RequireAuthenticated(), cfg.Categories.Moderate)
	categories.Put("/:id", auth.RequireAuthenticated(), cfg.Categories.Update)
	categories.Delete("/:id", auth.RequireAuthenticated(), cfg.Categories.Delete)

	products := api.Group("/products")
	products.Post("/", auth.RequireAuthenticated(), cfg.Products.Create)
	products.Get("/store/:storeId/search", cfg.Products.Search)
	products.Get("/store/:storeId", cfg.Products.ListByStore)
	products.Put("/:id", auth.RequireAuthenticated(), cfg.Products.Update)
	products.Delete("/:id", auth.RequireAuthenticated(), cfg.Products.Delete)
}

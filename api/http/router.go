package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/webstore/catalog-api/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. The guard wraps only
// the product routes; signup, login and the probes stay public.
func Register(app *fiber.App, auth *handlers.AuthHandler, products *handlers.ProductHandler, health *handlers.HealthHandler, guard fiber.Handler) {
	app.Get("/", health.Root)
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Post("/signup", auth.Signup)
	app.Post("/login", auth.Login)

	pg := app.Group("/products", guard)
	pg.Get("/", products.List)
	pg.Post("/", products.Create)
	pg.Get("/:id", products.GetByID)
	pg.Put("/:id", products.Update)
	pg.Delete("/:id", products.Delete)
}

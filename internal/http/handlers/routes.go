package handlers

import (
	"time"

	applog "gearmatch/internal/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes mounts the API surface. Shared between main and the
// HTTP-level tests so both exercise the same routing.
func RegisterRoutes(app *fiber.App, deps *Deps) {
	api := app.Group("/api")

	// Identity (login throttled)
	api.Post("/register", deps.AuthHandler.Register)
	api.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return jsonError(c, fiber.StatusTooManyRequests, "too many attempts, please try again later")
		},
	}), deps.AuthHandler.Login)

	// Intake form schema (read-only)
	api.Get("/forms/:sport", deps.FormsHandler.Categories)
	api.Get("/forms/:sport/:category", deps.FormsHandler.Fields)

	// Catalog (owner-scoped)
	requireShop := RequireShop(deps.Tokens)
	api.Get("/products", requireShop, deps.ProductHandler.List)
	api.Post("/products", requireShop, deps.ProductHandler.Create)
	api.Put("/products/:id", requireShop, deps.ProductHandler.Update)
	api.Delete("/products/:id", requireShop, deps.ProductHandler.Delete)

	// Recommendations: the one anonymous surface, rate limited
	api.Post("/recommendations", limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.recommendations.hit", nil)
			return jsonError(c, fiber.StatusTooManyRequests, "rate limit exceeded, retry soon")
		},
	}), deps.RecommendHandler.Recommend)

	// Analytics placeholder
	api.Get("/analytics/overview", requireShop, deps.AnalyticsHandler.Overview)

	// Health
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/galbi-backend/internal/middleware"
)

type Handlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Creation   *CreationHandler
	Generation *GenerationHandler
	Upload     *UploadHandler
	Payment    *PaymentHandler
}

// SetupRoutes mounts the REST API under /api.
func SetupRoutes(app *fiber.App, h Handlers, tokens middleware.TokenValidator, users middleware.UserLookup) {
	api := app.Group("/api")
	requireAuth := middleware.AuthMiddleware(tokens)

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout)
	auth.Get("/user", middleware.OptionalAuth(tokens), h.Auth.CurrentUser)

	api.Get("/creations", h.Creation.List)
	api.Get("/creations/:id", h.Creation.Get)
	api.Get("/creations/:id/qr", h.Creation.QRCode)

	preview := api.Group("/preview")
	preview.Post("/2d", h.Generation.Preview2D)
	preview.Post("/3d", h.Generation.Preview3D)

	// Protected routes
	generate := api.Group("/generate", requireAuth, middleware.RequireQuota(users))
	generate.Post("/2d", h.Generation.Generate2D)
	generate.Post("/3d", h.Generation.Generate3D)

	user := api.Group("/user", requireAuth)
	user.Get("/creations", h.User.GetMyCreations)
	user.Get("/quota", h.User.GetQuota)

	uploads := api.Group("/uploads", requireAuth)
	uploads.Post("/", h.Upload.Upload)
	uploads.Get("/", h.Upload.List)
	uploads.Get("/:id", h.Upload.Get)

	payments := api.Group("/payments", requireAuth)
	payments.Post("/", h.Payment.Create)
	payments.Get("/", h.Payment.History)
	payments.Get("/:id", h.Payment.Get)
}

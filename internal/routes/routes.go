package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/config"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/handlers"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/middleware"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/realtime"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/services"
)

// Register wires up all HTTP routes and the websocket endpoint.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, hub *realtime.Hub) {
	images := services.NewCloudinaryService(cfg.CloudinaryURL)
	email := services.NewEmailService(cfg.ResendAPIKey, cfg.ResendFromEmail, cfg.AdminEmail)

	authHandler := handlers.NewAuthHandler(db, cfg)
	menuHandler := handlers.NewMenuHandler(db, images)
	orderHandler := handlers.NewOrderHandler(db, cfg, hub, email)
	supportHandler := handlers.NewSupportHandler(email)

	protect := middleware.Protect(cfg, db)
	admin := middleware.RequireAdmin()

	app.Use("/ws", realtime.Upgrade)
	app.Get("/ws", realtime.Handler(hub))

	api := app.Group("/api")
	api.Get("/health", handlers.Health)

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/google", authHandler.GoogleAuth)
	auth.Get("/me", protect, authHandler.Me)

	menu := api.Group("/menu")
	menu.Get("/categories", menuHandler.ListCategories)
	menu.Post("/categories", protect, admin, menuHandler.CreateCategory)
	menu.Get("/categories/:id", menuHandler.GetCategory)
	menu.Put("/categories/:id", protect, admin, menuHandler.UpdateCategory)
	menu.Delete("/categories/:id", protect, admin, menuHandler.DeleteCategory)

	menu.Get("/items", menuHandler.ListItems)
	menu.Get("/items/:id", menuHandler.GetItem)
	menu.Post("/items", protect, admin, menuHandler.CreateItem)
	menu.Put("/items/:id", protect, admin, menuHandler.UpdateItem)
	menu.Delete("/items/:id", protect, admin, menuHandler.DeleteItem)

	orders := api.Group("/orders")
	orders.Post("/", middleware.OptionalAuth(cfg, db), orderHandler.Create)
	orders.Get("/", protect, admin, orderHandler.List)
	orders.Get("/stats", protect, admin, orderHandler.Stats)
	orders.Get("/my/orders", protect, orderHandler.MyOrders)
	orders.Get("/track/:orderNumber", orderHandler.Track)
	orders.Get("/:id", protect, orderHandler.Get)
	orders.Put("/:id/status", protect, admin, orderHandler.UpdateStatus)

	api.Post("/support/message", supportHandler.SendMessage)
}

package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/config"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/database"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/handlers"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/realtime"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if err := database.Seed(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("database seed failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Hood Eatery Backend",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowCredentials: true,
	}))

	hub := realtime.NewHub()
	routes.Register(app, db, cfg, hub)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}

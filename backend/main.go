package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"lingua/backend/config"
	"lingua/backend/database"
	"lingua/backend/middleware"
	"lingua/backend/routes"
	"lingua/backend/scheduler"
	"lingua/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Daily word rotation
	picker := scheduler.NewDailyWordPicker(db, logger)
	picker.Start()
	defer picker.Stop()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(etag.New())
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	mailer := utils.NewMailer(cfg)
	routes.SetupRoutes(app, db, cfg, mailer, picker)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}

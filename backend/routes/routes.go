package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingua/backend/config"
	"lingua/backend/controllers"
	"lingua/backend/middleware"
	"lingua/backend/scheduler"
	"lingua/backend/utils"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, mailer utils.Mailer, picker *scheduler.DailyWordPicker) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg, mailer)
	app.Post("/api/auth/register", authController.Register)
	app.Get("/api/auth/verify", authController.VerifyEmail)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/forgot-password", authController.ForgotPassword)
	app.Post("/api/auth/reset-password", authController.ResetPassword)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Content routes
	lessonsController := controllers.NewLessonsController(db, cfg)
	app.Get("/api/lessons", lessonsController.GetLessons)
	app.Get("/api/lessons/:id", lessonsController.GetLesson)

	decksController := controllers.NewDecksController(db, cfg)
	app.Get("/api/decks", decksController.GetDecks)
	app.Get("/api/decks/:id", decksController.GetDeck)

	dailyWordController := controllers.NewDailyWordController(picker, cfg)
	app.Get("/api/words/daily", dailyWordController.GetDailyWord)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	app.Get("/api/progress/:userId", authMiddleware, progressController.GetProgress)
	app.Post("/api/progress/update-last-learning", authMiddleware, progressController.UpdateLastLearning)
}

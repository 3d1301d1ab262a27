package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quizcraft/quiz_builder/handlers"
	"github.com/quizcraft/quiz_builder/middleware"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/upload", middleware.Protected(), handlers.UploadCoverImage)
}

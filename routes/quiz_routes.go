package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quizcraft/quiz_builder/handlers"
	"github.com/quizcraft/quiz_builder/middleware"
)

// QuizRoutes wires the quiz aggregate endpoints. Reads are public;
// every mutation sits behind the JWT middleware.
func QuizRoutes(app *fiber.App, quizHandler *handlers.QuizHandler, questionHandler *handlers.QuestionHandler) {
	api := app.Group("/api/v1")

	quizzes := api.Group("/quizzes")
	quizzes.Get("", quizHandler.ListQuizzes)
	quizzes.Get("/:id", quizHandler.GetQuiz)
	quizzes.Post("", middleware.Protected(), quizHandler.CreateQuiz)
	quizzes.Put("/:id", middleware.Protected(), quizHandler.UpdateQuiz)
	quizzes.Delete("/:id", middleware.Protected(), quizHandler.DeleteQuiz)

	questions := quizzes.Group("/:id/questions", middleware.Protected())
	questions.Post("", questionHandler.AddQuestion)
	questions.Put("", questionHandler.ReorderQuestions)
	questions.Put("/:questionId", questionHandler.UpdateQuestion)
	questions.Delete("/:questionId", questionHandler.DeleteQuestion)
}

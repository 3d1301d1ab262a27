package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/quizcraft/quiz_builder/middleware"
	"github.com/quizcraft/quiz_builder/services"
)

type QuizHandler struct {
	service *services.QuizService
}

func NewQuizHandler(service *services.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

type CreateQuizRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	CoverImage  string `json:"coverImage" validate:"required"`
}

// UpdateQuizRequest is the allow-list of patchable quiz fields.
// authorId and questions sent in the body are simply dropped; the
// author never changes and questions have their own endpoints.
type UpdateQuizRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CoverImage  *string `json:"coverImage"`
	Published   *bool   `json:"published"`
}

func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "10"))
	search := c.Query("search")

	quizzes, total, err := h.service.ListQuizzes(page, pageSize, search)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"items": quizzes,
		"total": total,
	})
}

func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	callerID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	var req CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	quiz, err := h.service.CreateQuiz(callerID, req.Title, req.Description, req.CoverImage)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quiz)
}

func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz ID"})
	}

	quiz, err := h.service.GetQuiz(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(quiz)
}

func (h *QuizHandler) UpdateQuiz(c *fiber.Ctx) error {
	callerID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz ID"})
	}

	var req UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	quiz, err := h.service.UpdateQuiz(id, callerID, services.QuizPatch{
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		Published:   req.Published,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(quiz)
}

func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	callerID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz ID"})
	}

	if err := h.service.DeleteQuiz(id, callerID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Quiz deleted successfully"})
}

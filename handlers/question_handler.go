package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/quizcraft/quiz_builder/middleware"
	"github.com/quizcraft/quiz_builder/services"
)

type QuestionHandler struct {
	service *services.QuizService
}

func NewQuestionHandler(service *services.QuizService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// QuestionRequest carries the client-facing question shape: plain
// option strings plus the index of the correct one. The index is a
// pointer so that 0 survives the required check.
type QuestionRequest struct {
	QuestionText       string   `json:"questionText" validate:"required"`
	Options            []string `json:"options" validate:"required,min=2"`
	CorrectOptionIndex *int     `json:"correctOptionIndex" validate:"required"`
}

type ReorderRequest struct {
	QuestionIDs []string `json:"questionIds" validate:"required"`
}

func (h *QuestionHandler) AddQuestion(c *fiber.Ctx) error {
	callerID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}
	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz ID"})
	}

	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	question, err := h.service.AddQuestion(quizID, callerID, req.QuestionText, req.Options, *req.CorrectOptionIndex)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(question)
}

func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	callerID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}
	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz ID"})
	}
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question ID"})
	}

	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	question, err := h.service.UpdateQuestion(quizID, callerID, questionID, req.QuestionText, req.Options, *req.CorrectOptionIndex)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(question)
}

func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	callerID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}
	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz ID"})
	}
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question ID"})
	}

	if err := h.service.DeleteQuestion(quizID, callerID, questionID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Question deleted successfully"})
}

func (h *QuestionHandler) ReorderQuestions(c *fiber.Ctx) error {
	callerID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}
	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz ID"})
	}

	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	questionIDs := make([]uuid.UUID, len(req.QuestionIDs))
	for i, raw := range req.QuestionIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question ID in list"})
		}
		questionIDs[i] = id
	}

	if err := h.service.ReorderQuestions(quizID, callerID, questionIDs); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Questions reordered successfully"})
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/quizcraft/quiz_builder/handlers"
	"github.com/quizcraft/quiz_builder/models"
	"github.com/quizcraft/quiz_builder/routes"
	"github.com/quizcraft/quiz_builder/services"
)

const testSecret = "test-secret"

// memoryQuizStore is a minimal in-memory services.QuizStore for
// exercising the HTTP surface without a database.
type memoryQuizStore struct {
	quizzes map[uuid.UUID]models.Quiz
	order   []uuid.UUID
}

func newMemoryQuizStore() *memoryQuizStore {
	return &memoryQuizStore{quizzes: make(map[uuid.UUID]models.Quiz)}
}

func cloneQuiz(quiz models.Quiz) models.Quiz {
	questions := make([]models.Question, len(quiz.Questions))
	for i, question := range quiz.Questions {
		options := make([]models.Option, len(question.Options))
		copy(options, question.Options)
		questions[i] = models.Question{ID: question.ID, QuestionText: question.QuestionText, Options: options}
	}
	quiz.Questions = questions
	return quiz
}

func (m *memoryQuizStore) FindByID(id uuid.UUID) (*models.Quiz, error) {
	quiz, ok := m.quizzes[id]
	if !ok {
		return nil, services.ErrQuizNotFound
	}
	quiz = cloneQuiz(quiz)
	return &quiz, nil
}

func (m *memoryQuizStore) List(page, pageSize int, search string) ([]models.Quiz, int64, error) {
	items := make([]models.Quiz, 0, len(m.order))
	// Insertion order, newest last; reverse for newest-first.
	for i := len(m.order) - 1; i >= 0; i-- {
		if quiz, ok := m.quizzes[m.order[i]]; ok {
			items = append(items, cloneQuiz(quiz))
		}
	}
	total := int64(len(items))
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []models.Quiz{}, total, nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total, nil
}

func (m *memoryQuizStore) Create(quiz *models.Quiz) error {
	quiz.ID = uuid.New()
	quiz.CreatedAt = time.Now()
	m.quizzes[quiz.ID] = cloneQuiz(*quiz)
	m.order = append(m.order, quiz.ID)
	return nil
}

func (m *memoryQuizStore) Save(quiz *models.Quiz) error {
	m.quizzes[quiz.ID] = cloneQuiz(*quiz)
	return nil
}

func (m *memoryQuizStore) Delete(id uuid.UUID) error {
	if _, ok := m.quizzes[id]; !ok {
		return services.ErrQuizNotFound
	}
	delete(m.quizzes, id)
	return nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	store := newMemoryQuizStore()
	service := services.NewQuizService(store)
	app := fiber.New(fiber.Config{CaseSensitive: true, StrictRouting: true})
	routes.QuizRoutes(app, handlers.NewQuizHandler(service), handlers.NewQuestionHandler(service))
	return app
}

func signToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeQuiz(t *testing.T, resp *http.Response) models.Quiz {
	t.Helper()
	defer resp.Body.Close()
	var quiz models.Quiz
	if err := json.NewDecoder(resp.Body).Decode(&quiz); err != nil {
		t.Fatalf("decoding quiz: %v", err)
	}
	return quiz
}

func createQuiz(t *testing.T, app *fiber.App, token string) models.Quiz {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/quizzes", token, fiber.Map{
		"title":       "T",
		"description": "D",
		"coverImage":  "http://x/y.jpg",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create quiz status = %d, want 201", resp.StatusCode)
	}
	return decodeQuiz(t, resp)
}

func TestCreateQuizRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/quizzes", "", fiber.Map{
		"title": "T", "description": "D", "coverImage": "http://x/y.jpg",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestCreateQuizMissingFields(t *testing.T) {
	app := newTestApp(t)
	token := signToken(t, uuid.New())

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/quizzes", token, fiber.Map{
		"title": "T",
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateAndGetQuiz(t *testing.T) {
	app := newTestApp(t)
	author := uuid.New()
	quiz := createQuiz(t, app, signToken(t, author))

	if quiz.AuthorID != author {
		t.Errorf("authorId = %s, want %s", quiz.AuthorID, author)
	}
	if quiz.Published {
		t.Error("new quiz should be unpublished")
	}

	// Reads are public.
	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/quizzes/"+quiz.ID.String(), "", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("get status = %d, want 200", resp.StatusCode)
	}
	got := decodeQuiz(t, resp)
	if got.Title != "T" || got.Description != "D" || got.CoverImage != "http://x/y.jpg" {
		t.Errorf("unexpected quiz: %+v", got)
	}
}

func TestGetQuizNotFound(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/quizzes/"+uuid.NewString(), "", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodGet, "/api/v1/quizzes/not-a-uuid", "", nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("malformed id status = %d, want 400", resp.StatusCode)
	}
}

func TestListQuizzes(t *testing.T) {
	app := newTestApp(t)
	token := signToken(t, uuid.New())
	createQuiz(t, app, token)
	createQuiz(t, app, token)

	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/quizzes?page=1&pageSize=1", "", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	defer resp.Body.Close()

	var result struct {
		Items []models.Quiz `json:"items"`
		Total int64         `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if result.Total != 2 || len(result.Items) != 1 {
		t.Errorf("total=%d items=%d, want 2 and 1", result.Total, len(result.Items))
	}
}

func TestUpdateQuizIgnoresProtectedFields(t *testing.T) {
	app := newTestApp(t)
	author := uuid.New()
	token := signToken(t, author)
	quiz := createQuiz(t, app, token)

	addQuestion(t, app, token, quiz.ID, "q1", []string{"a", "b"}, 0)

	resp := doJSON(t, app, fiber.MethodPut, "/api/v1/quizzes/"+quiz.ID.String(), token, fiber.Map{
		"title":     "Renamed",
		"published": true,
		"authorId":  uuid.NewString(),
		"questions": []fiber.Map{},
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	updated := decodeQuiz(t, resp)

	if updated.Title != "Renamed" || !updated.Published {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.AuthorID != author {
		t.Errorf("authorId was patched to %s", updated.AuthorID)
	}
	if len(updated.Questions) != 1 {
		t.Errorf("questions were patched, got %d", len(updated.Questions))
	}
}

func TestUpdateAndDeleteQuizForbiddenForNonAuthor(t *testing.T) {
	app := newTestApp(t)
	quiz := createQuiz(t, app, signToken(t, uuid.New()))
	otherToken := signToken(t, uuid.New())

	resp := doJSON(t, app, fiber.MethodPut, "/api/v1/quizzes/"+quiz.ID.String(), otherToken, fiber.Map{
		"title": "Hijack",
	})
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("update status = %d, want 403", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodDelete, "/api/v1/quizzes/"+quiz.ID.String(), otherToken, nil)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("delete status = %d, want 403", resp.StatusCode)
	}

	// Still retrievable afterward.
	resp = doJSON(t, app, fiber.MethodGet, "/api/v1/quizzes/"+quiz.ID.String(), "", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("get after forbidden delete = %d, want 200", resp.StatusCode)
	}
}

func TestDeleteQuiz(t *testing.T) {
	app := newTestApp(t)
	token := signToken(t, uuid.New())
	quiz := createQuiz(t, app, token)

	resp := doJSON(t, app, fiber.MethodDelete, "/api/v1/quizzes/"+quiz.ID.String(), token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodGet, "/api/v1/quizzes/"+quiz.ID.String(), "", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodDelete, "/api/v1/quizzes/"+quiz.ID.String(), token, nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("second delete = %d, want 404", resp.StatusCode)
	}
}

func addQuestion(t *testing.T, app *fiber.App, token string, quizID uuid.UUID, text string, options []string, correct int) models.Question {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/v1/quizzes/%s/questions", quizID), token, fiber.Map{
		"questionText":       text,
		"options":            options,
		"correctOptionIndex": correct,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("add question status = %d, want 201", resp.StatusCode)
	}
	defer resp.Body.Close()
	var question models.Question
	if err := json.NewDecoder(resp.Body).Decode(&question); err != nil {
		t.Fatalf("decoding question: %v", err)
	}
	return question
}

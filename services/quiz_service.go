package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/quizcraft/quiz_builder/models"
	"gorm.io/datatypes"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// QuizService owns all reads and writes of the quiz aggregate,
// including the embedded question list. Every mutating method loads
// the quiz, checks ownership, mutates in memory, and writes the whole
// document back. Two concurrent writers to the same quiz race
// last-write-wins; see DESIGN.md.
type QuizService struct {
	store QuizStore
}

func NewQuizService(store QuizStore) *QuizService {
	return &QuizService{store: store}
}

// QuizPatch is the allow-list of quiz fields a generic update may
// touch. AuthorID and the question list are deliberately not
// representable here; they change only through dedicated operations.
type QuizPatch struct {
	Title       *string
	Description *string
	CoverImage  *string
	Published   *bool
}

func (s *QuizService) CreateQuiz(authorID uuid.UUID, title, description, coverImage string) (*models.Quiz, error) {
	if authorID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" || strings.TrimSpace(coverImage) == "" {
		return nil, fmt.Errorf("%w: title, description, and a cover image are required", ErrInvalidInput)
	}

	quiz := &models.Quiz{
		Title:       title,
		Description: description,
		CoverImage:  coverImage,
		AuthorID:    authorID,
		Published:   false,
		Questions:   datatypes.NewJSONSlice([]models.Question{}),
	}
	if err := s.store.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) GetQuiz(id uuid.UUID) (*models.Quiz, error) {
	return s.store.FindByID(id)
}

// ListQuizzes returns a newest-first page plus the total number of
// quizzes matching the search term. Out-of-range pages come back empty
// with the total intact.
func (s *QuizService) ListQuizzes(page, pageSize int, search string) ([]models.Quiz, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return s.store.List(page, pageSize, strings.TrimSpace(search))
}

func (s *QuizService) UpdateQuiz(id, callerID uuid.UUID, patch QuizPatch) (*models.Quiz, error) {
	quiz, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := assertOwner(quiz, callerID); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		quiz.Title = *patch.Title
	}
	if patch.Description != nil {
		if strings.TrimSpace(*patch.Description) == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", ErrInvalidInput)
		}
		quiz.Description = *patch.Description
	}
	if patch.CoverImage != nil {
		if strings.TrimSpace(*patch.CoverImage) == "" {
			return nil, fmt.Errorf("%w: cover image cannot be empty", ErrInvalidInput)
		}
		quiz.CoverImage = *patch.CoverImage
	}
	if patch.Published != nil {
		quiz.Published = *patch.Published
	}

	if err := s.store.Save(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) DeleteQuiz(id, callerID uuid.UUID) error {
	quiz, err := s.store.FindByID(id)
	if err != nil {
		return err
	}
	if err := assertOwner(quiz, callerID); err != nil {
		return err
	}
	return s.store.Delete(id)
}

// AddQuestion appends a normalized question to the end of the quiz's
// ordered list and returns it with its assigned id.
func (s *QuizService) AddQuestion(quizID, callerID uuid.UUID, questionText string, options []string, correctOptionIndex int) (*models.Question, error) {
	quiz, err := s.store.FindByID(quizID)
	if err != nil {
		return nil, err
	}
	if err := assertOwner(quiz, callerID); err != nil {
		return nil, err
	}

	question, err := NormalizeQuestion(questionText, options, correctOptionIndex)
	if err != nil {
		return nil, err
	}
	question.ID = uuid.New()

	quiz.Questions = append(quiz.Questions, question)
	if err := s.store.Save(quiz); err != nil {
		return nil, err
	}
	return &question, nil
}

// UpdateQuestion replaces the text and options of the identified
// question in place; its id and position in the list do not change.
func (s *QuizService) UpdateQuestion(quizID, callerID, questionID uuid.UUID, questionText string, options []string, correctOptionIndex int) (*models.Question, error) {
	quiz, err := s.store.FindByID(quizID)
	if err != nil {
		return nil, err
	}
	if err := assertOwner(quiz, callerID); err != nil {
		return nil, err
	}

	question, err := NormalizeQuestion(questionText, options, correctOptionIndex)
	if err != nil {
		return nil, err
	}

	idx := quiz.QuestionByID(questionID)
	if idx < 0 {
		return nil, ErrQuestionNotFound
	}
	question.ID = questionID
	quiz.Questions[idx] = question

	if err := s.store.Save(quiz); err != nil {
		return nil, err
	}
	return &question, nil
}

// DeleteQuestion removes the question from the quiz. Deleting an id
// that is already absent succeeds without a write; clients can retry
// deletes freely.
func (s *QuizService) DeleteQuestion(quizID, callerID, questionID uuid.UUID) error {
	quiz, err := s.store.FindByID(quizID)
	if err != nil {
		return err
	}
	if err := assertOwner(quiz, callerID); err != nil {
		return err
	}

	idx := quiz.QuestionByID(questionID)
	if idx < 0 {
		return nil
	}
	quiz.Questions = append(quiz.Questions[:idx], quiz.Questions[idx+1:]...)
	return s.store.Save(quiz)
}

// ReorderQuestions replaces the stored order wholesale with the list
// rebuilt from questionIDs, which must be an exact permutation of the
// existing question ids.
func (s *QuizService) ReorderQuestions(quizID, callerID uuid.UUID, questionIDs []uuid.UUID) error {
	quiz, err := s.store.FindByID(quizID)
	if err != nil {
		return err
	}
	if err := assertOwner(quiz, callerID); err != nil {
		return err
	}

	reordered, err := validateReorder(quiz.Questions, questionIDs)
	if err != nil {
		return err
	}
	quiz.Questions = reordered
	return s.store.Save(quiz)
}

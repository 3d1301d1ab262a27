package services

import (
	"github.com/google/uuid"
	"github.com/quizcraft/quiz_builder/models"
)

// QuizStore is the persistence boundary for the quiz aggregate. Each
// call is atomic at the document level: Save writes the whole row, so a
// mutation either fully lands or leaves the prior state untouched.
type QuizStore interface {
	// FindByID returns ErrQuizNotFound when no quiz has the id.
	FindByID(id uuid.UUID) (*models.Quiz, error)
	// List returns a newest-first page of quizzes and the total count
	// matching the search term. Pages are 1-indexed.
	List(page, pageSize int, search string) ([]models.Quiz, int64, error)
	Create(quiz *models.Quiz) error
	Save(quiz *models.Quiz) error
	// Delete returns ErrQuizNotFound when the quiz is already gone.
	Delete(id uuid.UUID) error
}

package services

import (
	"github.com/google/uuid"
	"github.com/quizcraft/quiz_builder/models"
)

// assertOwner gates every mutating operation on a quiz. A missing
// caller identity is reported as unauthorized before ownership is even
// looked at, so "not logged in" and "not the owner" stay distinct.
func assertOwner(quiz *models.Quiz, callerID uuid.UUID) error {
	if callerID == uuid.Nil {
		return ErrUnauthorized
	}
	if quiz.AuthorID != callerID {
		return ErrForbidden
	}
	return nil
}

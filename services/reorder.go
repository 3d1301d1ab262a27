package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/quizcraft/quiz_builder/models"
)

// validateReorder checks that proposedIDs is an exact permutation of
// the existing question ids and returns the questions in the proposed
// order. Any unknown, duplicated, or missing id fails the whole call;
// partial reorders are not supported.
func validateReorder(existing []models.Question, proposedIDs []uuid.UUID) ([]models.Question, error) {
	byID := make(map[uuid.UUID]models.Question, len(existing))
	for _, question := range existing {
		byID[question.ID] = question
	}

	reordered := make([]models.Question, 0, len(proposedIDs))
	for _, id := range proposedIDs {
		question, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: question list mismatch", ErrInvalidInput)
		}
		// Deleting catches duplicated ids in proposedIDs.
		delete(byID, id)
		reordered = append(reordered, question)
	}

	if len(reordered) != len(existing) || len(byID) != 0 {
		return nil, fmt.Errorf("%w: question list mismatch", ErrInvalidInput)
	}

	return reordered, nil
}

package services

import (
	"fmt"
	"strings"

	"github.com/quizcraft/quiz_builder/models"
)

// NormalizeQuestion turns the client-facing representation (option
// strings plus the index of the correct one) into the persisted form,
// marking exactly the option at correctOptionIndex as correct. Both the
// create and update paths go through here so the single-correct-option
// invariant cannot be bypassed. The returned question has no id; the
// caller assigns or preserves one.
func NormalizeQuestion(questionText string, options []string, correctOptionIndex int) (models.Question, error) {
	if strings.TrimSpace(questionText) == "" {
		return models.Question{}, fmt.Errorf("%w: question text is required", ErrInvalidInput)
	}
	if len(options) < 2 {
		return models.Question{}, fmt.Errorf("%w: a question needs at least two options", ErrInvalidInput)
	}
	if correctOptionIndex < 0 || correctOptionIndex >= len(options) {
		return models.Question{}, fmt.Errorf("%w: correct option index out of range", ErrInvalidInput)
	}

	formatted := make([]models.Option, len(options))
	for i, optionText := range options {
		if strings.TrimSpace(optionText) == "" {
			return models.Question{}, fmt.Errorf("%w: option text is required", ErrInvalidInput)
		}
		formatted[i] = models.Option{
			OptionText: optionText,
			IsCorrect:  i == correctOptionIndex,
		}
	}

	return models.Question{
		QuestionText: questionText,
		Options:      formatted,
	}, nil
}

package services

import "errors"

var (
	// ErrUnauthorized is returned when a mutating call carries no caller identity.
	ErrUnauthorized = errors.New("missing caller identity")
	// ErrForbidden is returned when the caller is not the quiz author.
	ErrForbidden = errors.New("caller is not the quiz author")
	// ErrQuizNotFound indicates the quiz id resolved to nothing.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuestionNotFound indicates a question id is not part of the quiz.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrInvalidInput covers malformed payloads: missing text, too few
	// options, an out-of-range correct index, or a bad reorder list.
	ErrInvalidInput = errors.New("invalid input")
)

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Option is an anonymous value object; it has no identity outside its
// position in the question's option list.
type Option struct {
	OptionText string `json:"optionText"`
	IsCorrect  bool   `json:"isCorrect"`
}

// Question lives only inside its quiz. Exactly one option carries
// IsCorrect=true; that is enforced at write time, never trusted from
// the client.
type Question struct {
	ID           uuid.UUID `json:"id"`
	QuestionText string    `json:"questionText"`
	Options      []Option  `json:"options"`
}

// Quiz is the aggregate root. The question list is embedded as a jsonb
// column and is mutated only through the question operations of the
// quiz service, never by a generic field patch.
type Quiz struct {
	ID          uuid.UUID                     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string                        `gorm:"size:255;not null" json:"title"`
	Description string                        `gorm:"type:text;not null" json:"description"`
	CoverImage  string                        `gorm:"size:512;not null" json:"coverImage"`
	AuthorID    uuid.UUID                     `gorm:"type:uuid;not null;index" json:"authorId"`
	Published   bool                          `gorm:"not null;default:false" json:"published"`
	Questions   datatypes.JSONSlice[Question] `gorm:"type:jsonb" json:"questions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// QuestionByID returns the index of the question with the given id, or
// -1 when it is not part of the quiz.
func (q *Quiz) QuestionByID(questionID uuid.UUID) int {
	for i := range q.Questions {
		if q.Questions[i].ID == questionID {
			return i
		}
	}
	return -1
}

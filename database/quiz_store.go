package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/quizcraft/quiz_builder/models"
	"github.com/quizcraft/quiz_builder/services"
	"gorm.io/gorm"
)

// QuizStore persists the quiz aggregate as a single row; the embedded
// question list rides along in its jsonb column, so every Save is one
// whole-document write.
type QuizStore struct {
	db *gorm.DB
}

var _ services.QuizStore = (*QuizStore)(nil)

func NewQuizStore(db *gorm.DB) *QuizStore {
	return &QuizStore{db: db}
}

func (s *QuizStore) FindByID(id uuid.UUID) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizStore) List(page, pageSize int, search string) ([]models.Quiz, int64, error) {
	query := s.db.Model(&models.Quiz{})
	countQuery := s.db.Model(&models.Quiz{})

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", searchTerm, searchTerm)
		countQuery = countQuery.Where("title ILIKE ? OR description ILIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quizzes []models.Quiz
	offset := (page - 1) * pageSize
	if err := query.Order("created_at desc").Offset(offset).Limit(pageSize).Find(&quizzes).Error; err != nil {
		return nil, 0, err
	}
	return quizzes, total, nil
}

func (s *QuizStore) Create(quiz *models.Quiz) error {
	return s.db.Create(quiz).Error
}

func (s *QuizStore) Save(quiz *models.Quiz) error {
	return s.db.Save(quiz).Error
}

func (s *QuizStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Quiz{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return services.ErrQuizNotFound
	}
	return nil
}

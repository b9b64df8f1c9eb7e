package repository

import (
	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// QuizRepository определяет методы для работы с викторинами
type QuizRepository interface {
	Create(quiz *entity.Quiz) error
	GetByID(id uint) (*entity.Quiz, error)
	// GetWithQuestions возвращает викторину вместе с её вопросами
	GetWithQuestions(id uint) (*entity.Quiz, error)
	// ListWithQuestions возвращает все викторины с вопросами,
	// отсортированные по дате создания (новые первыми)
	ListWithQuestions() ([]entity.Quiz, error)
	Delete(id uint) error
}

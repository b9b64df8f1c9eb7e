package service

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	"github.com/yourusername/vocab-api/internal/domain/repository"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
)

// QuizService предоставляет методы для работы с викторинами
type QuizService struct {
	db           *gorm.DB
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
}

// NewQuizService создает новый сервис викторин
func NewQuizService(
	db *gorm.DB,
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
) *QuizService {
	return &QuizService{
		db:           db,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
	}
}

// CreateQuiz создает новую викторину вместе с ее вопросами.
// Викторина и вопросы записываются в одной транзакции: либо появляется
// целиком, либо не появляется вовсе.
func (s *QuizService) CreateQuiz(title, description string, questions []entity.Question) (*entity.Quiz, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: quiz title is required", apperrors.ErrValidation)
	}

	for i := range questions {
		if err := validateQuestion(&questions[i]); err != nil {
			return nil, fmt.Errorf("question #%d: %w", i+1, err)
		}
	}

	quiz := &entity.Quiz{
		Title:       title,
		Description: description,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return fmt.Errorf("failed to create quiz: %w", err)
		}

		for i := range questions {
			questions[i].QuizID = &quiz.ID
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return fmt.Errorf("failed to create quiz questions: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	quiz.Questions = questions
	log.Printf("[QuizService] Создана викторина ID=%d (%q) с %d вопросами", quiz.ID, quiz.Title, len(questions))
	return quiz, nil
}

// GetQuizByID возвращает викторину с вопросами по ID
func (s *QuizService) GetQuizByID(id uint) (*entity.Quiz, error) {
	return s.quizRepo.GetWithQuestions(id)
}

// ListQuizzes возвращает все викторины с их вопросами
func (s *QuizService) ListQuizzes() ([]entity.Quiz, error) {
	return s.quizRepo.ListWithQuestions()
}

// DeleteQuiz удаляет викторину, сохраняя ее вопросы в банке.
// Сначала отвязываются вопросы (quiz_id → NULL), затем удаляется сама
// викторина: банк не теряет строки, даже если удаление оборвется между
// шагами и будет повторено.
func (s *QuizService) DeleteQuiz(id uint) error {
	// Проверяем существование заранее, чтобы отличить 404 от успешного удаления
	if _, err := s.quizRepo.GetByID(id); err != nil {
		return err
	}

	if err := s.questionRepo.DetachFromQuiz(id); err != nil {
		return fmt.Errorf("failed to detach questions: %w", err)
	}
	if err := s.quizRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}

	log.Printf("[QuizService] Удалена викторина ID=%d, вопросы возвращены в банк", id)
	return nil
}

// validateQuestion проверяет корректность вопроса викторины
func validateQuestion(q *entity.Question) error {
	if q.Prompt == "" {
		return fmt.Errorf("%w: question text is required", apperrors.ErrValidation)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: question must have at least 2 options", apperrors.ErrValidation)
	}
	if q.CorrectIndex != nil && !q.IsValidOption(*q.CorrectIndex) {
		return fmt.Errorf("%w: correct option index out of range", apperrors.ErrValidation)
	}
	return nil
}

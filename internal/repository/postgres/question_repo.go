package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	"github.com/yourusername/vocab-api/internal/domain/repository"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// CreateBatch создает пакет вопросов
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(&questions).Error
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetByQuizID возвращает все вопросы викторины
func (r *QuestionRepo) GetByQuizID(quizID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("quiz_id = ?", quizID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// SelectRandom интерпретирует одну спецификацию выборки каскада.
// Все ступени каскада проходят через этот единственный метод: предикаты
// приходят данными, а не отдельным кодом построения запроса на каждую
// ступень. Порядок строк — равномерно случайная перестановка, новая на
// каждый вызов (ORDER BY RANDOM()); Limit обрезает её.
func (r *QuestionRepo) SelectRandom(filter repository.QuestionFilter) ([]entity.Question, error) {
	query := r.db.Model(&entity.Question{})

	if filter.LevelID != nil {
		query = query.Where("questions.level = ?", *filter.LevelID)
	}

	if len(filter.Chapters) > 0 {
		switch filter.ChapterSource {
		case repository.ChapterOnEntry:
			// Метаданные главы могли остаться на записи и не быть
			// перенесены на вопрос — фильтруем по entries.chapter
			query = query.
				Joins("JOIN entries ON entries.id = questions.entry_id").
				Where("entries.chapter IN ?", filter.Chapters)
		default:
			query = query.Where("questions.chapter IN ?", filter.Chapters)
		}
	}

	if filter.EntryRange != nil {
		query = query.Where("questions.entry_id BETWEEN ? AND ?", filter.EntryRange.Start, filter.EntryRange.End)
	}

	query = query.Order("RANDOM()")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var questions []entity.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// DetachFromQuiz обнуляет quiz_id у всех вопросов викторины.
// Вопросы при удалении викторины сохраняются в банке.
func (r *QuestionRepo) DetachFromQuiz(quizID uint) error {
	return r.db.Model(&entity.Question{}).
		Where("quiz_id = ?", quizID).
		Update("quiz_id", nil).Error
}

// CountTotal возвращает общее количество вопросов в банке
func (r *QuestionRepo) CountTotal() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Count(&count).Error
	return count, err
}

// CountByLevel возвращает количество вопросов по уровням (включая NULL)
func (r *QuestionRepo) CountByLevel() ([]repository.GroupCount, error) {
	var rows []repository.GroupCount
	err := r.db.Model(&entity.Question{}).
		Select("level AS key, COUNT(*) AS count").
		Group("level").
		Order("level").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByChapter возвращает количество вопросов по главам (включая NULL)
func (r *QuestionRepo) CountByChapter() ([]repository.GroupCount, error) {
	var rows []repository.GroupCount
	err := r.db.Model(&entity.Question{}).
		Select("chapter AS key, COUNT(*) AS count").
		Group("chapter").
		Order("chapter").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Sample возвращает первые limit вопросов по возрастанию ID
func (r *QuestionRepo) Sample(limit int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("id").Limit(limit).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

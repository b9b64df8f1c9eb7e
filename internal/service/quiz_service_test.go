package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
	pgRepo "github.com/yourusername/vocab-api/internal/repository/postgres"
)

// newTestDB открывает чистую in-memory базу со схемой приложения
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Level{},
		&entity.Entry{},
		&entity.Quiz{},
		&entity.Question{},
		&entity.Test{},
	))

	levels := entity.SeedLevels()
	require.NoError(t, db.Create(&levels).Error)
	return db
}

func newQuizService(t *testing.T) (*QuizService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewQuizService(db, pgRepo.NewQuizRepo(db), pgRepo.NewQuestionRepo(db)), db
}

func intPtr(v int) *int { return &v }

func sampleQuestions(n int) []entity.Question {
	questions := make([]entity.Question, n)
	for i := range questions {
		questions[i] = entity.Question{
			Prompt:       "word",
			Options:      entity.StringArray{"a", "b", "c", "d"},
			CorrectIndex: intPtr(i % 4),
		}
	}
	return questions
}

func TestQuizService_CreateQuiz(t *testing.T) {
	svc, db := newQuizService(t)

	quiz, err := svc.CreateQuiz("chapter review", "words 1-20", sampleQuestions(3))

	require.NoError(t, err)
	require.NotZero(t, quiz.ID)
	assert.Equal(t, 3, quiz.QuestionCount())

	// Вопросы привязаны к викторине
	var attached int64
	require.NoError(t, db.Model(&entity.Question{}).Where("quiz_id = ?", quiz.ID).Count(&attached).Error)
	assert.Equal(t, int64(3), attached)
}

func TestQuizService_CreateQuiz_Validation(t *testing.T) {
	svc, _ := newQuizService(t)

	tests := []struct {
		name      string
		title     string
		questions []entity.Question
	}{
		{
			name:  "empty title",
			title: "",
		},
		{
			name:  "question without text",
			title: "quiz",
			questions: []entity.Question{
				{Options: entity.StringArray{"a", "b"}},
			},
		},
		{
			name:  "single option",
			title: "quiz",
			questions: []entity.Question{
				{Prompt: "w", Options: entity.StringArray{"a"}},
			},
		},
		{
			name:  "correct index out of range",
			title: "quiz",
			questions: []entity.Question{
				{Prompt: "w", Options: entity.StringArray{"a", "b"}, CorrectIndex: intPtr(5)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateQuiz(tt.title, "", tt.questions)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestQuizService_CreateQuiz_AtomicOnInvalidQuestion(t *testing.T) {
	svc, db := newQuizService(t)

	questions := sampleQuestions(2)
	questions[1].Prompt = "" // валидация отклонит весь запрос

	_, err := svc.CreateQuiz("broken", "", questions)
	require.Error(t, err)

	// Ни викторины, ни вопросов после отказа
	var quizzes, bank int64
	require.NoError(t, db.Model(&entity.Quiz{}).Count(&quizzes).Error)
	require.NoError(t, db.Model(&entity.Question{}).Count(&bank).Error)
	assert.Zero(t, quizzes)
	assert.Zero(t, bank)
}

func TestQuizService_GetQuizByID(t *testing.T) {
	svc, _ := newQuizService(t)

	created, err := svc.CreateQuiz("quiz", "", sampleQuestions(2))
	require.NoError(t, err)

	got, err := svc.GetQuizByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "quiz", got.Title)
	assert.Len(t, got.Questions, 2)

	_, err = svc.GetQuizByID(999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestQuizService_DeleteQuiz_KeepsQuestionsInBank(t *testing.T) {
	svc, db := newQuizService(t)

	quiz, err := svc.CreateQuiz("doomed", "", sampleQuestions(3))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQuiz(quiz.ID))

	// Викторины нет, вопросы остались в банке без привязки
	_, err = svc.GetQuizByID(quiz.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var bank, attached int64
	require.NoError(t, db.Model(&entity.Question{}).Count(&bank).Error)
	require.NoError(t, db.Model(&entity.Question{}).Where("quiz_id IS NOT NULL").Count(&attached).Error)
	assert.Equal(t, int64(3), bank)
	assert.Zero(t, attached)
}

func TestQuizService_DeleteQuiz_NotFound(t *testing.T) {
	svc, _ := newQuizService(t)

	err := svc.DeleteQuiz(321)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

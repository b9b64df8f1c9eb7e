package testgen

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// MockTestRepository - мок для repository.TestRepository
type MockTestRepository struct {
	mock.Mock
}

func (m *MockTestRepository) Create(test *entity.Test) error {
	args := m.Called(test)
	if args.Error(0) == nil {
		test.ID = 42 // имитируем присвоение ID базой
	}
	return args.Error(0)
}

func (m *MockTestRepository) GetByID(id uint) (*entity.Test, error) {
	args := m.Called(id)
	if tst := args.Get(0); tst != nil {
		return tst.(*entity.Test), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestProject_PrefersCorrectIndex(t *testing.T) {
	idx := 2
	questions := []entity.Question{
		{ID: 1, Prompt: "word", Options: entity.StringArray{"a", "b", "c"}, CorrectIndex: &idx, CorrectAnswer: "0"},
	}

	projected := Project(questions)

	require.Len(t, projected, 1)
	assert.Equal(t, uint(1), projected[0].ID)
	assert.Equal(t, "word", projected[0].Text)
	assert.Equal(t, 2, projected[0].CorrectIndex)
}

func TestProject_LegacyNumericAnswer(t *testing.T) {
	// Старые строки: correct_index отсутствует, индекс лежит текстом
	questions := []entity.Question{
		{ID: 5, Prompt: "word", Options: entity.StringArray{"a", "b"}, CorrectAnswer: "1"},
	}

	projected := Project(questions)

	require.Len(t, projected, 1)
	assert.Equal(t, 1, projected[0].CorrectIndex)
}

func TestProject_MissingBothFallsBackToZero(t *testing.T) {
	questions := []entity.Question{
		{ID: 7, Prompt: "word", Options: entity.StringArray{"a", "b"}, CorrectAnswer: "яблоко"},
	}

	projected := Project(questions)

	require.Len(t, projected, 1)
	assert.Equal(t, 0, projected[0].CorrectIndex)
}

func TestMaterialize_TitleAndSnapshot(t *testing.T) {
	// Arrange
	repo := new(MockTestRepository)
	repo.On("Create", mock.Anything).Return(nil).Once()

	m := NewMaterializer(repo)
	frozen := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	m.now = func() time.Time { return frozen }

	spec := Spec{LevelLabel: "n3"}
	questions := someQuestions(2)

	// Act
	test, err := m.Materialize(spec, questions)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(42), test.ID)
	assert.Equal(t, "Test - n3 - 2025-03-14T15:09:26Z", test.Title)
	assert.Len(t, test.Questions, 2)
	repo.AssertExpectations(t)
}

func TestMaterialize_TitleUsesRawLabel(t *testing.T) {
	// Нераспознанная метка уровня попадает в заголовок как есть
	repo := new(MockTestRepository)
	repo.On("Create", mock.Anything).Return(nil).Once()

	m := NewMaterializer(repo)
	m.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	test, err := m.Materialize(Spec{LevelLabel: "custom"}, someQuestions(1))

	require.NoError(t, err)
	assert.Equal(t, "Test - custom - 2025-01-01T00:00:00Z", test.Title)
}

func TestMaterialize_CreateErrorPropagates(t *testing.T) {
	repo := new(MockTestRepository)
	storageErr := errors.New("insert failed")
	repo.On("Create", mock.Anything).Return(storageErr).Once()

	m := NewMaterializer(repo)

	test, err := m.Materialize(Spec{LevelLabel: "n4"}, someQuestions(1))

	assert.Nil(t, test)
	assert.ErrorIs(t, err, storageErr)
}

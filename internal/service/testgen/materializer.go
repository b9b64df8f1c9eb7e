package testgen

import (
	"fmt"
	"time"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	"github.com/yourusername/vocab-api/internal/domain/repository"
)

// Materializer превращает набор кандидатов в неизменяемую строку tests.
// Запись — единственный атомарный INSERT полностью сериализованного снимка;
// частично записанных тестов не существует.
type Materializer struct {
	testRepo repository.TestRepository
	now      func() time.Time
}

// NewMaterializer создаёт новый материализатор
func NewMaterializer(testRepo repository.TestRepository) *Materializer {
	return &Materializer{
		testRepo: testRepo,
		now:      time.Now,
	}
}

// Project проецирует строки банка во внешне видимую форму вопроса теста.
// Предпочитается correct_index; для старых строк используется числовая
// форма correct_answer; при отсутствии обоих — 0.
func Project(questions []entity.Question) entity.TestQuestionList {
	projected := make(entity.TestQuestionList, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		projected = append(projected, entity.TestQuestion{
			ID:           q.ID,
			Text:         q.Prompt,
			Options:      q.Options,
			CorrectIndex: q.ResolveCorrectIndex(),
		})
	}
	return projected
}

// Materialize сохраняет снимок кандидатов как новый тест и возвращает его.
// Заголовок включает метку уровня из запроса и момент создания.
func (m *Materializer) Materialize(spec Spec, questions []entity.Question) (*entity.Test, error) {
	test := &entity.Test{
		Title:     fmt.Sprintf("Test - %s - %s", spec.LevelLabel, m.now().UTC().Format(time.RFC3339)),
		Questions: Project(questions),
	}

	if err := m.testRepo.Create(test); err != nil {
		return nil, fmt.Errorf("failed to save test: %w", err)
	}

	return test, nil
}

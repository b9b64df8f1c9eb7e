package testgen

import (
	"fmt"
	"log"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	"github.com/yourusername/vocab-api/internal/domain/repository"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
)

// step — одна ступень каскада: имя для логов и спецификация запроса
type step struct {
	name   string
	filter repository.QuestionFilter
}

// Planner выполняет каскад постепенно ослабляемых запросов к банку вопросов.
// Каскад обязан вернуть непустой набор кандидатов всякий раз, когда в банке
// есть хоть один вопрос: намерение клиента предпочитается, но деградация
// происходит постепенно, вплоть до выборки из всего банка.
type Planner struct {
	questionRepo repository.QuestionRepository
}

// NewPlanner создаёт новый планировщик выборки
func NewPlanner(questionRepo repository.QuestionRepository) *Planner {
	return &Planner{questionRepo: questionRepo}
}

// buildCascade строит упорядоченный список ступеней для спецификации.
// Каскад — данные: каждая ступень — это QuestionFilter, который
// интерпретирует единственный метод репозитория. Ступень, совпадающая с
// уже добавленной, не включается, чтобы не выполнять один и тот же запрос
// дважды (например, пустой запрос сразу даёт единственную ступень
// «весь банк»).
func buildCascade(spec Spec) []step {
	hasModeFilter := (spec.Mode == ModeChapter && len(spec.Chapters) > 0) ||
		(spec.Mode == ModeRange && spec.Range != nil)

	exact := repository.QuestionFilter{
		LevelID: spec.LevelID,
		Limit:   spec.Limit,
	}
	if spec.Mode == ModeChapter {
		exact.Chapters = spec.Chapters
		exact.ChapterSource = repository.ChapterOnQuestion
	} else if spec.Range != nil {
		exact.EntryRange = &repository.EntryIDRange{Start: spec.Range.Start, End: spec.Range.End}
	}

	steps := []step{{name: "exact", filter: exact}}

	appendStep := func(name string, filter repository.QuestionFilter) {
		for _, existing := range steps {
			if existing.filter.Equal(filter) {
				return
			}
		}
		steps = append(steps, step{name: name, filter: filter})
	}

	// Метаданные главы могли остаться на словарной записи и не попасть на
	// вопрос: пробуем entries.chapter через JOIN, сохраняя фильтр уровня
	if spec.Mode == ModeChapter && len(spec.Chapters) > 0 {
		viaEntry := exact
		viaEntry.ChapterSource = repository.ChapterOnEntry
		appendStep("entry-chapter", viaEntry)
	}

	// Сбрасываем фильтр уровня, сохраняя фильтр режима
	if spec.LevelID != nil && hasModeFilter {
		noLevel := exact
		noLevel.LevelID = nil
		appendStep("no-level", noLevel)
	}

	// Последняя ступень: весь банк случайно, только с ограничением Limit
	appendStep("unfiltered", repository.QuestionFilter{Limit: spec.Limit})

	return steps
}

// Select материализует непустой набор кандидатов для спецификации.
// Ступени выполняются строго последовательно: следующая запускается только
// если предыдущая вернула ноль строк. Ошибка хранилища на промежуточной
// ступени логируется и трактуется как «ноль строк» — временный сбой точного
// запроса не должен помешать откату к более широким. Ошибка на последней
// ступени прерывает запрос: недоступное хранилище не должно маскироваться
// под пустой банк. Если все ступени вернули пусто, банк не содержит ни
// одного подходящего вопроса — единственный случай отказа выборки.
func (p *Planner) Select(spec Spec) ([]entity.Question, error) {
	steps := buildCascade(spec)

	for i, st := range steps {
		questions, err := p.questionRepo.SelectRandom(st.filter)
		if err != nil {
			if i == len(steps)-1 {
				return nil, fmt.Errorf("cascade step %q failed: %w", st.name, err)
			}
			log.Printf("[Planner] Ступень %q завершилась ошибкой, продолжаем каскад: %v", st.name, err)
			continue
		}

		if len(questions) > 0 {
			if i > 0 {
				log.Printf("[Planner] Ступень %q дала %d вопросов (ступень \"exact\" была пустой)", st.name, len(questions))
			}
			return questions, nil
		}
	}

	return nil, apperrors.ErrNoQuestions
}

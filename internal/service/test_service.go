package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	"github.com/yourusername/vocab-api/internal/domain/repository"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
	"github.com/yourusername/vocab-api/internal/service/testgen"
)

// testCacheTTL — время жизни закешированной полезной нагрузки теста.
// Тест неизменяем, поэтому TTL нужен только для ограничения памяти Redis.
const testCacheTTL = 24 * time.Hour

// TestService предоставляет методы движка сборки тестов:
// нормализация критериев → каскад выборки → материализация снимка.
type TestService struct {
	planner      *testgen.Planner
	materializer *testgen.Materializer
	testRepo     repository.TestRepository
	cacheRepo    repository.CacheRepository // может быть nil — кеш необязателен
}

// NewTestService создает новый сервис тестов
func NewTestService(
	questionRepo repository.QuestionRepository,
	testRepo repository.TestRepository,
	cacheRepo repository.CacheRepository,
) *TestService {
	return &TestService{
		planner:      testgen.NewPlanner(questionRepo),
		materializer: testgen.NewMaterializer(testRepo),
		testRepo:     testRepo,
		cacheRepo:    cacheRepo,
	}
}

// CreateTest собирает новый тест по сырому запросу выборки.
// Чтение (выборка кандидатов) и запись (материализация) — две отдельные
// операции без общей транзакции: тест в любом случае является снимком на
// момент создания, поэтому гонка с удалением вопроса между фазами не
// нарушает корректность.
func (s *TestService) CreateTest(raw testgen.RawSelection) (*entity.Test, error) {
	spec := testgen.Normalize(raw)

	questions, err := s.planner.Select(spec)
	if err != nil {
		return nil, err
	}

	test, err := s.materializer.Materialize(spec, questions)
	if err != nil {
		return nil, err
	}

	log.Printf("[TestService] Создан тест ID=%d (%q) из %d вопросов", test.ID, test.Title, len(test.Questions))
	return test, nil
}

// GetTestByID возвращает замороженную полезную нагрузку теста.
// Тест после создания неизменяем, поэтому результат безопасно кешируется.
func (s *TestService) GetTestByID(id uint) (*entity.Test, error) {
	cacheKey := fmt.Sprintf("test:%d", id)

	if s.cacheRepo != nil {
		var cached entity.Test
		if err := s.cacheRepo.GetJSON(cacheKey, &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[TestService] Ошибка чтения кеша для теста %d: %v", id, err)
		}
	}

	test, err := s.testRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(cacheKey, test, testCacheTTL); err != nil {
			// Кеш — best effort: ошибка записи не мешает ответу
			log.Printf("[TestService] Ошибка записи кеша для теста %d: %v", id, err)
		}
	}

	return test, nil
}

package service

import (
	"fmt"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	"github.com/yourusername/vocab-api/internal/domain/repository"
)

// statsSampleSize — количество примеров строк в диагностическом отчете
const statsSampleSize = 5

// BankStats — диагностический снимок состояния банка вопросов
type BankStats struct {
	TotalQuestions     int64             `json:"total_questions"`
	TotalEntries       int64             `json:"total_entries"`
	QuestionsByLevel   map[string]int64  `json:"questions_by_level"`
	QuestionsByChapter map[string]int64  `json:"questions_by_chapter"`
	SampleQuestions    []entity.Question `json:"sample_questions"`
	SampleEntries      []entity.Entry    `json:"sample_entries"`
}

// StatsService собирает диагностику банка вопросов
type StatsService struct {
	questionRepo repository.QuestionRepository
	entryRepo    repository.EntryRepository
}

// NewStatsService создает новый сервис статистики
func NewStatsService(
	questionRepo repository.QuestionRepository,
	entryRepo repository.EntryRepository,
) *StatsService {
	return &StatsService{
		questionRepo: questionRepo,
		entryRepo:    entryRepo,
	}
}

// BankStats возвращает сводку по банку: количества, разбивки по уровню и
// главе, примеры строк. Строки с NULL в ключе группировки попадают в
// отдельную группу "null".
func (s *StatsService) BankStats() (*BankStats, error) {
	stats := &BankStats{
		QuestionsByLevel:   make(map[string]int64),
		QuestionsByChapter: make(map[string]int64),
	}

	var err error
	if stats.TotalQuestions, err = s.questionRepo.CountTotal(); err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	if stats.TotalEntries, err = s.entryRepo.CountTotal(); err != nil {
		return nil, fmt.Errorf("failed to count entries: %w", err)
	}

	byLevel, err := s.questionRepo.CountByLevel()
	if err != nil {
		return nil, fmt.Errorf("failed to group questions by level: %w", err)
	}
	for _, g := range byLevel {
		stats.QuestionsByLevel[groupKey(g.Key)] = g.Count
	}

	byChapter, err := s.questionRepo.CountByChapter()
	if err != nil {
		return nil, fmt.Errorf("failed to group questions by chapter: %w", err)
	}
	for _, g := range byChapter {
		stats.QuestionsByChapter[groupKey(g.Key)] = g.Count
	}

	if stats.SampleQuestions, err = s.questionRepo.Sample(statsSampleSize); err != nil {
		return nil, fmt.Errorf("failed to sample questions: %w", err)
	}
	if stats.SampleEntries, err = s.entryRepo.Sample(statsSampleSize); err != nil {
		return nil, fmt.Errorf("failed to sample entries: %w", err)
	}

	return stats, nil
}

func groupKey(key *int) string {
	if key == nil {
		return "null"
	}
	return fmt.Sprintf("%d", *key)
}

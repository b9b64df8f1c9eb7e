package repository

import (
	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// ChapterSource определяет, к какой таблице применяется фильтр по главам.
type ChapterSource int

const (
	// ChapterOnQuestion — фильтр по колонке questions.chapter
	ChapterOnQuestion ChapterSource = iota
	// ChapterOnEntry — фильтр по entries.chapter через JOIN по entry_id.
	// Используется ступенью каскада, терпимой к непронесённым метаданным глав.
	ChapterOnEntry
)

// EntryIDRange задаёт включительный диапазон [Start, End] по questions.entry_id
type EntryIDRange struct {
	Start int
	End   int
}

// QuestionFilter — спецификация одного запроса выборки: список предикатов,
// случайный порядок и ограничение количества. Каскад планировщика — это
// данные (упорядоченный список таких спецификаций), которые интерпретирует
// единственный метод SelectRandom, а не продублированный код построения
// запросов на каждую ступень.
type QuestionFilter struct {
	// LevelID — предикат questions.level = N; nil означает «без фильтра уровня»
	LevelID *int
	// Chapters — предикат chapter IN (...); пустой срез означает «без фильтра глав»
	Chapters []int
	// ChapterSource выбирает таблицу для фильтра глав
	ChapterSource ChapterSource
	// EntryRange — предикат entry_id BETWEEN Start AND End; nil — без фильтра
	EntryRange *EntryIDRange
	// Limit обрезает перемешанную последовательность; 0 — вернуть все строки
	Limit int
}

// IsUnfiltered сообщает, что спецификация не накладывает ни одного предиката
// (фильтры уровня, глав и диапазона отсутствуют).
func (f QuestionFilter) IsUnfiltered() bool {
	return f.LevelID == nil && len(f.Chapters) == 0 && f.EntryRange == nil
}

// Equal сравнивает две спецификации попредикатно. Планировщик использует
// сравнение, чтобы не выполнять повторно ступень, идентичную уже выполненной.
func (f QuestionFilter) Equal(other QuestionFilter) bool {
	if (f.LevelID == nil) != (other.LevelID == nil) {
		return false
	}
	if f.LevelID != nil && *f.LevelID != *other.LevelID {
		return false
	}
	if len(f.Chapters) != len(other.Chapters) {
		return false
	}
	for i := range f.Chapters {
		if f.Chapters[i] != other.Chapters[i] {
			return false
		}
	}
	if len(f.Chapters) > 0 && f.ChapterSource != other.ChapterSource {
		return false
	}
	if (f.EntryRange == nil) != (other.EntryRange == nil) {
		return false
	}
	if f.EntryRange != nil && *f.EntryRange != *other.EntryRange {
		return false
	}
	return f.Limit == other.Limit
}

// GroupCount — результат агрегации количества вопросов по ключу группировки.
// Key равен nil для строк с NULL в соответствующей колонке.
type GroupCount struct {
	Key   *int
	Count int64
}

// QuestionRepository определяет методы для работы с банком вопросов
type QuestionRepository interface {
	Create(question *entity.Question) error
	CreateBatch(questions []entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	GetByQuizID(quizID uint) ([]entity.Question, error)
	// SelectRandom выполняет одну спецификацию выборки: применяет предикаты,
	// перемешивает строки равномерно случайной перестановкой (новой на каждый
	// вызов) и обрезает по Limit. Пустой результат — не ошибка.
	SelectRandom(filter QuestionFilter) ([]entity.Question, error)
	// DetachFromQuiz обнуляет quiz_id у всех вопросов викторины
	DetachFromQuiz(quizID uint) error
	CountTotal() (int64, error)
	CountByLevel() ([]GroupCount, error)
	CountByChapter() ([]GroupCount, error)
	Sample(limit int) ([]entity.Question, error)
}

package repository

import (
	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// TestRepository определяет методы для работы со сгенерированными тестами.
// Тест неизменяем: единственная запись — атомарный INSERT при материализации,
// дальше только чтение.
type TestRepository interface {
	// Create вставляет тест одной операцией. Частично записанных тестов не
	// бывает: сериализация полезной нагрузки происходит в рамках той же
	// вставки, и её ошибка не оставляет строку в базе.
	Create(test *entity.Test) error
	GetByID(id uint) (*entity.Test, error)
}

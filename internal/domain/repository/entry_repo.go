package repository

import (
	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// EntryRepository определяет методы для работы со словарными записями
type EntryRepository interface {
	CreateBatch(entries []entity.Entry) error
	GetByID(id uint) (*entity.Entry, error)
	CountTotal() (int64, error)
	Sample(limit int) ([]entity.Entry, error)
}

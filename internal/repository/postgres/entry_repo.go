package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
)

// EntryRepo реализует repository.EntryRepository
type EntryRepo struct {
	db *gorm.DB
}

// NewEntryRepo создает новый репозиторий словарных записей
func NewEntryRepo(db *gorm.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// CreateBatch создает пакет записей (используется массовым импортом)
func (r *EntryRepo) CreateBatch(entries []entity.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Create(&entries).Error
}

// GetByID возвращает запись по ID
func (r *EntryRepo) GetByID(id uint) (*entity.Entry, error) {
	var entry entity.Entry
	err := r.db.First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// CountTotal возвращает общее количество записей
func (r *EntryRepo) CountTotal() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Entry{}).Count(&count).Error
	return count, err
}

// Sample возвращает первые limit записей по возрастанию ID
func (r *EntryRepo) Sample(limit int) ([]entity.Entry, error) {
	var entries []entity.Entry
	err := r.db.Order("id").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// InitSchema приводит схему базы данных к актуальному состоянию и засевает
// справочник уровней. Вызов идемпотентен: повторный запуск на уже
// инициализированной базе ничего не меняет.
func InitSchema(db *gorm.DB) error {
	log.Println("Инициализация схемы базы данных...")

	// Порядок важен: таблицы со внешними ключами мигрируются после тех,
	// на которые они ссылаются
	if err := db.AutoMigrate(
		&entity.Level{},
		&entity.Entry{},
		&entity.Quiz{},
		&entity.Question{},
		&entity.Test{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Засеваем канонические уровни; существующие строки не трогаем
	levels := entity.SeedLevels()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&levels).Error; err != nil {
		return fmt.Errorf("failed to seed levels: %w", err)
	}

	log.Println("Схема базы данных инициализирована.")
	return nil
}

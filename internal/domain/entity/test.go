package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// TestQuestion — внешне видимая форма вопроса внутри сгенерированного теста.
// Фиксируется в момент материализации и больше не пересчитывается.
type TestQuestion struct {
	ID           uint        `json:"id"`
	Text         string      `json:"text"`
	Options      StringArray `json:"options"`
	CorrectIndex int         `json:"correct_index"`
}

// TestQuestionList - пользовательский тип для хранения снимка вопросов в JSONB
type TestQuestionList []TestQuestion

// Scan реализует интерфейс sql.Scanner для TestQuestionList
func (l *TestQuestionList) Scan(value interface{}) error {
	if value == nil {
		*l = TestQuestionList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, okStr := value.(string); okStr {
			bytes = []byte(s)
		} else {
			return errors.New("failed to unmarshal JSONB value: expected []byte")
		}
	}

	if len(bytes) == 0 {
		*l = TestQuestionList{}
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Value реализует интерфейс driver.Valuer для TestQuestionList.
// Сериализация происходит в момент единственного INSERT: если она
// завершилась ошибкой, строка в базе не появляется вовсе.
func (l TestQuestionList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Test представляет неизменяемый снимок вопросов, собранный движком выборки.
// После создания строка только читается; последующие правки или удаления
// исходных вопросов на уже созданные тесты не влияют.
type Test struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	Title     string           `gorm:"size:255" json:"title"`
	Questions TestQuestionList `gorm:"type:jsonb;not null" json:"questions"`
	CreatedAt time.Time        `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Test) TableName() string {
	return "tests"
}

package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

// StringArray - пользовательский тип для работы с JSONB
type StringArray []string

// Scan реализует интерфейс sql.Scanner для StringArray
// Используется GORM для чтения JSONB данных из базы
func (o *StringArray) Scan(value interface{}) error {
	// Обработка NULL значений из базы данных
	if value == nil {
		*o = StringArray{}
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

	// Обработка пустого массива байтов
	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для StringArray
// Используется GORM для записи StringArray в JSONB в базе
func (o StringArray) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("[]"), nil // Возвращаем пустой JSON массив вместо null
	}
	return json.Marshal(o)
}

// Question представляет вопрос банка, порождённый из словарной записи.
// Движок выборки вопросы только читает; изменяются они авторингом
// викторин либо массовым импортом.
type Question struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// EntryID — владелец-запись; удаление записи каскадно удаляет вопрос
	EntryID *uint `gorm:"index" json:"entry_id,omitempty"`
	// QuizID — необязательная викторина; при её удалении обнуляется
	QuizID *uint  `gorm:"index" json:"quiz_id,omitempty"`
	QType  string `gorm:"column:q_type;size:50" json:"q_type,omitempty"`
	Prompt string `gorm:"type:text" json:"prompt"`
	// CorrectAnswer хранит правильный ответ в текстовом виде; для старых
	// строк банка это числовой индекс варианта в виде строки
	CorrectAnswer string      `gorm:"type:text" json:"correct_answer,omitempty"`
	Options       StringArray `gorm:"type:jsonb;not null" json:"options"`
	// CorrectIndex — 0-based индекс правильного варианта; может отсутствовать
	// у строк, импортированных до появления колонки
	CorrectIndex *int `json:"correct_index,omitempty"`
	// LevelID ссылается на n_level.id (1..5), допускает NULL
	LevelID *int `gorm:"column:level;index" json:"level,omitempty"`
	// Chapter — группа вопроса, независимая от entries.chapter
	Chapter   *int      `gorm:"index" json:"chapter,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Entry *Entry `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE" json:"-"`
	Level *Level `gorm:"foreignKey:LevelID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// OptionsCount возвращает количество вариантов ответа
func (q *Question) OptionsCount() int {
	return len(q.Options)
}

// IsValidOption проверяет, является ли выбранный вариант допустимым
func (q *Question) IsValidOption(selectedOption int) bool {
	return selectedOption >= 0 && selectedOption < len(q.Options)
}

// ResolveCorrectIndex возвращает индекс правильного варианта.
// Предпочитает correct_index; для старых строк пытается разобрать числовую
// форму correct_answer; если нет ни того, ни другого — возвращает 0.
// Известная слабость исходных данных, сохранена намеренно.
func (q *Question) ResolveCorrectIndex() int {
	if q.CorrectIndex != nil {
		return *q.CorrectIndex
	}
	if idx, err := strconv.Atoi(q.CorrectAnswer); err == nil {
		return idx
	}
	return 0
}

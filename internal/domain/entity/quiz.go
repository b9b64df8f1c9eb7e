package entity

import (
	"time"
)

// Quiz представляет викторину — вручную составленный контейнер вопросов.
// Удаление викторины не удаляет вопросы: у них обнуляется quiz_id.
type Quiz struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Questions   []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:SET NULL" json:"questions"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Quiz) TableName() string {
	return "quizzes"
}

// QuestionCount возвращает количество вопросов викторины
func (q *Quiz) QuestionCount() int {
	return len(q.Questions)
}

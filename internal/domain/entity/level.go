package entity

// Level представляет уровень сложности JLPT (закрытое перечисление из пяти строк).
// id=1 соответствует самому лёгкому уровню n5, id=5 — самому сложному n1.
// Строки создаются один раз при инициализации схемы и никогда не изменяются.
type Level struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:level;size:10;not null" json:"level"`
}

// TableName определяет имя таблицы для GORM
func (Level) TableName() string {
	return "n_level"
}

// SeedLevels возвращает канонический набор уровней для идемпотентной загрузки.
func SeedLevels() []Level {
	return []Level{
		{ID: 1, Label: "n5"},
		{ID: 2, Label: "n4"},
		{ID: 3, Label: "n3"},
		{ID: 4, Label: "n2"},
		{ID: 5, Label: "n1"},
	}
}

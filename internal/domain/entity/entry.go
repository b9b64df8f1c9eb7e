package entity

// Entry представляет исходную словарную запись (единицу лексики).
// Записи создаются массовым импортом и после этого не изменяются.
type Entry struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ListIndex int    `gorm:"column:list_index" json:"list_index"`
	Kanji     string `gorm:"type:text" json:"kanji"`
	Kana      string `gorm:"type:text" json:"kana"`
	Meaning   string `gorm:"type:text" json:"meaning"`
	// Chapter — необязательная глава учебника. Дублирует questions.chapter:
	// метаданные главы могли не быть перенесены на вопросы, поэтому оба
	// поля сохраняются независимо.
	Chapter *int `gorm:"index" json:"chapter,omitempty"`
}

// TableName определяет имя таблицы для GORM
func (Entry) TableName() string {
	return "entries"
}

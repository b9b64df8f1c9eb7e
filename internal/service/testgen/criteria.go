package testgen

// Пакет testgen реализует движок сборки тестов: нормализацию критериев
// выборки, каскад постепенно ослабляемых запросов и материализацию
// неизменяемого снимка вопросов.

const (
	// ModeChapter — выборка по множеству глав
	ModeChapter = "chapter"
	// ModeRange — выборка по диапазону entry_id
	ModeRange = "range"

	// DefaultLevelLabel используется, когда уровень в запросе не указан
	DefaultLevelLabel = "n4"
)

// levelIDs — фиксированная таблица соответствия меток уровней числовым id
// из n_level (1 — самый лёгкий n5, 5 — самый сложный n1).
var levelIDs = map[string]int{
	"n5": 1,
	"n4": 2,
	"n3": 3,
	"n2": 4,
	"n1": 5,
}

// RangeRequest — пара границ диапазона entry_id (обе включительно)
type RangeRequest struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// RawSelection — нетипизированный запрос выборки, как его присылает клиент.
// Все поля необязательны: пустой запрос легален и означает выборку из
// всего банка вопросов.
type RawSelection struct {
	Level        string        `json:"level"`
	Mode         string        `json:"mode"`
	Chapters     []int         `json:"chapters"`
	Range        *RangeRequest `json:"range"`
	NumQuestions int           `json:"numQuestions"`
}

// Spec — нормализованная спецификация выборки
type Spec struct {
	// LevelID — числовой id уровня; nil означает «без фильтра уровня»
	LevelID *int
	// LevelLabel — метка уровня для заголовка теста. Нераспознанная метка
	// сохраняется здесь как есть, хотя фильтр по ней не строится.
	LevelLabel string
	Mode       string
	// Chapters — множество глав; пустой срез означает «без фильтра глав»
	Chapters []int
	// Range — диапазон entry_id; nil означает «без фильтра диапазона»
	Range *RangeRequest
	// Limit — верхняя граница количества вопросов; 0 — без ограничения
	Limit int
}

// Normalize превращает сырой запрос в валидированную спецификацию.
// Нормализация никогда не завершается ошибкой: нераспознанная метка уровня
// означает «без фильтра уровня», пустые главы/диапазон — «без
// соответствующего фильтра». Запрос не должен падать только из-за того,
// что клиент прислал незнакомый уровень.
func Normalize(raw RawSelection) Spec {
	label := raw.Level
	if label == "" {
		label = DefaultLevelLabel
	}

	spec := Spec{
		LevelLabel: label,
		Mode:       ModeChapter,
	}

	if id, ok := levelIDs[label]; ok {
		spec.LevelID = &id
	}

	if raw.Mode == ModeRange {
		spec.Mode = ModeRange
	}

	switch spec.Mode {
	case ModeChapter:
		if len(raw.Chapters) > 0 {
			spec.Chapters = raw.Chapters
		}
	case ModeRange:
		if raw.Range != nil {
			r := *raw.Range
			spec.Range = &r
		}
	}

	if raw.NumQuestions > 0 {
		spec.Limit = raw.NumQuestions
	}

	return spec
}

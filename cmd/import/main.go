package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/vocab-api/internal/config"
	"github.com/yourusername/vocab-api/internal/domain/entity"
	pgRepo "github.com/yourusername/vocab-api/internal/repository/postgres"
	"github.com/yourusername/vocab-api/pkg/database"
)

// optionCount — количество вариантов ответа в сгенерированном вопросе
const optionCount = 4

// importedRow — одна разобранная строка словарного xlsx-файла
type importedRow struct {
	ListIndex int
	Kanji     string
	Kana      string
	Meaning   string
	Chapter   *int
}

func main() {
	filePath := flag.String("file", "", "путь к xlsx-файлу со словарем")
	sheet := flag.String("sheet", "", "имя листа (по умолчанию первый)")
	level := flag.Int("level", 0, "числовой id уровня для сгенерированных вопросов (0 - без уровня)")
	seed := flag.Int64("seed", 0, "seed генератора случайных чисел (0 - недетерминированный)")
	flag.Parse()

	if *filePath == "" {
		log.Println("Не указан файл: используйте -file vocab.xlsx")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := database.InitSchema(db); err != nil {
		log.Printf("Failed to init database schema: %v", err)
		os.Exit(1)
	}

	rows, err := readVocabFile(*filePath, *sheet)
	if err != nil {
		log.Printf("Failed to read vocab file: %v", err)
		os.Exit(1)
	}
	log.Printf("[Import] Прочитано %d словарных строк из %s", len(rows), *filePath)

	rng := rand.New(rand.NewSource(*seed))
	if *seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	entryRepo := pgRepo.NewEntryRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)

	entries := make([]entity.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, entity.Entry{
			ListIndex: r.ListIndex,
			Kanji:     r.Kanji,
			Kana:      r.Kana,
			Meaning:   r.Meaning,
			Chapter:   r.Chapter,
		})
	}
	if err := entryRepo.CreateBatch(entries); err != nil {
		log.Printf("Failed to insert entries: %v", err)
		os.Exit(1)
	}

	questions := generateQuestions(entries, *level, rng)
	if err := questionRepo.CreateBatch(questions); err != nil {
		log.Printf("Failed to insert questions: %v", err)
		os.Exit(1)
	}

	log.Printf("[Import] Готово: %d записей, %d вопросов", len(entries), len(questions))
}

// readVocabFile разбирает xlsx-файл со столбцами:
// list_index | kanji | kana | meaning | chapter.
// Первая строка считается заголовком и пропускается.
func readVocabFile(path, sheet string) ([]importedRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheetName := sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}

	rawRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	rows := make([]importedRow, 0, len(rawRows))
	for i, cells := range rawRows {
		if i == 0 {
			continue // заголовок
		}
		if len(cells) < 4 {
			log.Printf("[Import] Строка %d пропущена: мало столбцов (%d)", i+1, len(cells))
			continue
		}

		listIndex, err := strconv.Atoi(strings.TrimSpace(cells[0]))
		if err != nil {
			log.Printf("[Import] Строка %d пропущена: нечисловой list_index %q", i+1, cells[0])
			continue
		}

		row := importedRow{
			ListIndex: listIndex,
			Kanji:     strings.TrimSpace(cells[1]),
			Kana:      strings.TrimSpace(cells[2]),
			Meaning:   strings.TrimSpace(cells[3]),
		}
		if row.Meaning == "" {
			log.Printf("[Import] Строка %d пропущена: пустое значение", i+1)
			continue
		}

		if len(cells) > 4 {
			if chapter, err := strconv.Atoi(strings.TrimSpace(cells[4])); err == nil {
				row.Chapter = &chapter
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// generateQuestions строит по вопросу на каждую словарную запись:
// подсказка — написание слова, варианты — его значение плюс значения
// случайных других записей. Записи без ID пропускаются.
func generateQuestions(entries []entity.Entry, level int, rng *rand.Rand) []entity.Question {
	if len(entries) < optionCount {
		log.Printf("[Import] Слишком мало записей (%d) для генерации вопросов с %d вариантами", len(entries), optionCount)
		return nil
	}

	questions := make([]entity.Question, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.ID == 0 {
			continue
		}

		prompt := e.Kanji
		if prompt == "" {
			prompt = e.Kana
		}

		options := make([]string, 0, optionCount)
		options = append(options, e.Meaning)
		for _, j := range rng.Perm(len(entries)) {
			if len(options) == optionCount {
				break
			}
			if j == i || entries[j].Meaning == e.Meaning {
				continue
			}
			options = append(options, entries[j].Meaning)
		}
		if len(options) < optionCount {
			// Недостаточно различных значений для дистракторов
			continue
		}

		rng.Shuffle(len(options), func(a, b int) {
			options[a], options[b] = options[b], options[a]
		})
		correctIndex := 0
		for k, opt := range options {
			if opt == e.Meaning {
				correctIndex = k
				break
			}
		}

		entryID := e.ID
		q := entity.Question{
			EntryID:      &entryID,
			QType:        "meaning",
			Prompt:       prompt,
			Options:      entity.StringArray(options),
			CorrectIndex: &correctIndex,
			Chapter:      e.Chapter,
		}
		if level > 0 {
			lvl := level
			q.LevelID = &lvl
		}
		questions = append(questions, q)
	}

	return questions
}

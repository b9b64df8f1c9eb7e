package dto

import (
	"time"

	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// QuestionResponse представляет вопрос банка в формате для ответа клиенту
type QuestionResponse struct {
	ID           uint     `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Level        *int     `json:"level,omitempty"`
	Chapter      *int     `json:"chapter,omitempty"`
	EntryID      *uint    `json:"entry_id,omitempty"`
}

// QuizResponse представляет викторину в формате для ответа клиенту
type QuizResponse struct {
	ID            uint               `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description,omitempty"`
	QuestionCount int                `json:"question_count"`
	Questions     []QuestionResponse `json:"questions,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// NewQuestionResponse создает DTO для вопроса банка
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:           q.ID,
		Text:         q.Prompt,
		Options:      q.Options,
		CorrectIndex: q.ResolveCorrectIndex(),
		Level:        q.LevelID,
		Chapter:      q.Chapter,
		EntryID:      q.EntryID,
	}
}

// NewQuizResponse создает DTO для викторины
func NewQuizResponse(quiz *entity.Quiz, includeQuestions bool) *QuizResponse {
	if quiz == nil {
		return nil
	}

	var questionsDTO []QuestionResponse
	if includeQuestions {
		questionsDTO = make([]QuestionResponse, len(quiz.Questions))
		for i := range quiz.Questions {
			questionsDTO[i] = NewQuestionResponse(&quiz.Questions[i])
		}
	}

	return &QuizResponse{
		ID:            quiz.ID,
		Title:         quiz.Title,
		Description:   quiz.Description,
		QuestionCount: quiz.QuestionCount(),
		Questions:     questionsDTO,
		CreatedAt:     quiz.CreatedAt,
	}
}

// NewListQuizResponse создает слайс DTO для списка викторин.
// Вопросы включаются: клиентский список викторин рендерит их содержимое.
func NewListQuizResponse(quizzes []entity.Quiz) []*QuizResponse {
	list := make([]*QuizResponse, len(quizzes))
	for i := range quizzes {
		list[i] = NewQuizResponse(&quizzes[i], true)
	}
	return list
}

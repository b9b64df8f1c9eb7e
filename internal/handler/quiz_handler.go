package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	"github.com/yourusername/vocab-api/internal/handler/dto"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
	"github.com/yourusername/vocab-api/internal/service"
)

// QuizHandler обрабатывает запросы, связанные с викторинами
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// CreateQuizRequest представляет запрос на создание викторины
type CreateQuizRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Questions   []struct {
		Text         string   `json:"text" binding:"required"`
		Options      []string `json:"options" binding:"required,min=2,max=6"`
		CorrectIndex int      `json:"correct_index" binding:"min=0"`
		Level        *int     `json:"level,omitempty"`
		Chapter      *int     `json:"chapter,omitempty"`
		EntryID      *uint    `json:"entry_id,omitempty"`
	} `json:"questions" binding:"omitempty,dive"`
}

// CreateQuiz обрабатывает запрос на создание викторины с вопросами
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Преобразуем данные в формат для сервиса
	questions := make([]entity.Question, 0, len(req.Questions))
	for i, q := range req.Questions {
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid correct_index %d for question #%d", q.CorrectIndex, i+1)})
			return
		}
		correctIndex := q.CorrectIndex
		questions = append(questions, entity.Question{
			Prompt:       q.Text,
			Options:      entity.StringArray(q.Options),
			CorrectIndex: &correctIndex,
			LevelID:      q.Level,
			Chapter:      q.Chapter,
			EntryID:      q.EntryID,
		})
	}

	quiz, err := h.quizService.CreateQuiz(req.Title, req.Description, questions)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuizResponse(quiz, true))
}

// GetQuiz возвращает викторину вместе с вопросами
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint) // Получаем из контекста

	quiz, err := h.quizService.GetQuizByID(quizID)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz, true))
}

// ListQuizzes возвращает список всех викторин с вопросами
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes()
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListQuizResponse(quizzes))
}

// DeleteQuiz удаляет викторину, возвращая ее вопросы в общий банк
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint) // Получаем из контекста

	if err := h.quizService.DeleteQuiz(quizID); err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quiz deleted successfully"})
}

// handleQuizError обрабатывает ошибки от сервиса викторин и отправляет соответствующий HTTP ответ
func (h *QuizHandler) handleQuizError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in QuizHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

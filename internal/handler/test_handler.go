package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/vocab-api/internal/handler/dto"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
	"github.com/yourusername/vocab-api/internal/service"
	"github.com/yourusername/vocab-api/internal/service/testgen"
)

// TestHandler обрабатывает запросы, связанные с тестами
type TestHandler struct {
	testService *service.TestService
}

// NewTestHandler создает новый обработчик тестов
func NewTestHandler(testService *service.TestService) *TestHandler {
	return &TestHandler{testService: testService}
}

// CreateTest обрабатывает запрос на сборку нового теста.
// Тело запроса — критерии выборки; все поля необязательны.
func (h *TestHandler) CreateTest(c *gin.Context) {
	var req testgen.RawSelection
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	test, err := h.testService.CreateTest(req)
	if err != nil {
		// Пустой результат каскада — ошибка клиента: банк не содержит
		// подходящих вопросов, повтор того же запроса не поможет
		if errors.Is(err, apperrors.ErrNoQuestions) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.handleTestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCreateTestResponse(test))
}

// GetTest возвращает замороженную полезную нагрузку теста
func (h *TestHandler) GetTest(c *gin.Context) {
	testID := c.MustGet("testID").(uint) // Получаем из контекста

	test, err := h.testService.GetTestByID(testID)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTestResponse(test))
}

// handleTestError обрабатывает ошибки от сервиса тестов и отправляет соответствующий HTTP ответ
func (h *TestHandler) handleTestError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in TestHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

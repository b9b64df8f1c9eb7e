package dto

import (
	"fmt"

	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// CreateTestResponse — ответ на создание теста: id и путь для перехода
type CreateTestResponse struct {
	ID       uint   `json:"id"`
	Redirect string `json:"redirect"`
}

// TestResponse представляет замороженный тест в формате для ответа клиенту
type TestResponse struct {
	ID        uint                    `json:"id"`
	Title     string                  `json:"title"`
	Questions entity.TestQuestionList `json:"questions"`
}

// NewCreateTestResponse создает DTO для только что созданного теста
func NewCreateTestResponse(test *entity.Test) *CreateTestResponse {
	return &CreateTestResponse{
		ID:       test.ID,
		Redirect: fmt.Sprintf("/test/%d", test.ID),
	}
}

// NewTestResponse создает DTO для теста
func NewTestResponse(test *entity.Test) *TestResponse {
	if test == nil {
		return nil
	}
	return &TestResponse{
		ID:        test.ID,
		Title:     test.Title,
		Questions: test.Questions,
	}
}

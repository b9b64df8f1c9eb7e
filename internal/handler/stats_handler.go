package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/vocab-api/internal/service"
)

// StatsHandler обрабатывает диагностические запросы
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler создает новый обработчик статистики
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetBankStats возвращает диагностическую сводку банка вопросов
// GET /api/debug/stats
func (h *StatsHandler) GetBankStats(c *gin.Context) {
	stats, err := h.statsService.BankStats()
	if err != nil {
		log.Printf("[StatsHandler] Ошибка при сборе статистики банка: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to collect bank stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

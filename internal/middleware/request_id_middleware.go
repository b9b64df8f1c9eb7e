package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — заголовок, в котором передается идентификатор запроса
const RequestIDHeader = "X-Request-ID"

// RequestID создает middleware, присваивающее каждому запросу уникальный
// идентификатор. Если клиент прислал свой X-Request-ID, он сохраняется.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

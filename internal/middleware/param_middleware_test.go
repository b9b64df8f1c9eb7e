package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestExtractUintParam(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		wantStatus int
		wantValue  uint
	}{
		{name: "valid id", param: "42", wantStatus: http.StatusOK, wantValue: 42},
		{name: "zero is valid", param: "0", wantStatus: http.StatusOK, wantValue: 0},
		{name: "non-numeric", param: "abc", wantStatus: http.StatusBadRequest},
		{name: "negative", param: "-1", wantStatus: http.StatusBadRequest},
		{name: "overflow uint32", param: "99999999999999", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			var captured uint
			router.GET("/items/:id", ExtractUintParam("id", "itemID"), func(c *gin.Context) {
				captured = c.MustGet("itemID").(uint)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/items/"+tt.param, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantValue, captured)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Без заголовка — генерируется новый идентификатор
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	// Присланный клиентом идентификатор сохраняется
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	router.ServeHTTP(w, req)
	assert.Equal(t, "client-supplied-id", w.Header().Get(RequestIDHeader))
}

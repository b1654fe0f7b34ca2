package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestElderOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(role string) *gin.Engine {
		r := gin.New()
		r.POST("/location", func(c *gin.Context) {
			if role != "" {
				c.Set("role", role)
			}
		}, ElderOnly(), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})
		return r
	}

	tests := []struct {
		name string
		role string
		want int
	}{
		{"elder passes", "elder", http.StatusCreated},
		{"caretaker rejected", "caretaker", http.StatusForbidden},
		{"missing role rejected", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/location", nil)
			newRouter(tt.role).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

package health

import (
	"net/http"

	"gentlecare/internal/domain"
	"gentlecare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/health-records")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
	}
}

func caller(c *gin.Context) (int64, domain.UserRole) {
	return c.GetInt64("user_id"), domain.UserRole(c.GetString("role"))
}

func (h *Handler) List(c *gin.Context) {
	userID, role := caller(c)

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	records, err := h.service.List(c.Request.Context(), userID, role, q)
	if err != nil {
		writeServiceError(c, err, "Failed to get health records")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"records": records})
}

func (h *Handler) Create(c *gin.Context) {
	userID, role := caller(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
		return
	}

	rec, err := h.service.Create(c.Request.Context(), userID, role, req)
	if err != nil {
		writeServiceError(c, err, "Failed to add health record")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"record_id": rec.ID})
}

func writeServiceError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Elder is not in your care")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

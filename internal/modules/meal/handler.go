package meal

import (
	"net/http"
	"strconv"

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
	g := rg.Group("/meals")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.POST("/:id/consume", h.Consume)
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

	meals, summary, err := h.service.List(c.Request.Context(), userID, role, q)
	if err != nil {
		writeServiceError(c, err, "Failed to get meals")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"meals": meals, "summary": summary})
}

func (h *Handler) Create(c *gin.Context) {
	userID, role := caller(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
		return
	}

	m, err := h.service.Create(c.Request.Context(), userID, role, req)
	if err != nil {
		writeServiceError(c, err, "Failed to add meal")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"meal_id": m.ID})
}

func (h *Handler) Consume(c *gin.Context) {
	userID, role := caller(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid meal ID")
		return
	}

	m, err := h.service.Consume(c.Request.Context(), userID, role, id)
	if err != nil {
		writeServiceError(c, err, "Failed to log meal")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"meal": m})
}

func writeServiceError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Meal does not belong to your elders")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Meal not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

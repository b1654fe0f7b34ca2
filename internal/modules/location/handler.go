package location

import (
	"net/http"
	"strconv"

	"gentlecare/internal/domain"
	"gentlecare/internal/middleware"
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
	g := rg.Group("/location")
	{
		// only elders report their own position
		g.POST("", middleware.ElderOnly(), h.Update)
		g.GET("/latest", h.Latest)
	}
}

func caller(c *gin.Context) (int64, domain.UserRole) {
	return c.GetInt64("user_id"), domain.UserRole(c.GetString("role"))
}

func (h *Handler) Update(c *gin.Context) {
	userID, role := caller(c)

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "latitude and longitude are required")
		return
	}

	l, err := h.service.Update(c.Request.Context(), userID, role, req)
	if err != nil {
		writeServiceError(c, err, "Failed to update location")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"location_id": l.ID})
}

func (h *Handler) Latest(c *gin.Context) {
	userID, role := caller(c)

	elderID, _ := strconv.ParseInt(c.Query("elder_id"), 10, 64)

	l, err := h.service.Latest(c.Request.Context(), userID, role, elderID)
	if err != nil {
		writeServiceError(c, err, "Failed to get location")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"location": l})
}

func writeServiceError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Elder is not in your care")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No location recorded yet")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

package appointment

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
	g := rg.Group("/appointments")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.PUT("/:id/status", h.UpdateStatus)
	}
}

func caller(c *gin.Context) (int64, domain.UserRole) {
	return c.GetInt64("user_id"), domain.UserRole(c.GetString("role"))
}

func (h *Handler) List(c *gin.Context) {
	userID, role := caller(c)

	apts, err := h.service.List(c.Request.Context(), userID, role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get appointments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointments": apts})
}

func (h *Handler) Create(c *gin.Context) {
	userID, role := caller(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
		return
	}

	a, err := h.service.Create(c.Request.Context(), userID, role, req)
	if err != nil {
		writeServiceError(c, err, "Failed to add appointment")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"appointment_id": a.ID})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	userID, role := caller(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid appointment ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be scheduled, completed or cancelled")
		return
	}

	a, err := h.service.UpdateStatus(c.Request.Context(), userID, role, id, req.Status)
	if err != nil {
		writeServiceError(c, err, "Failed to update appointment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

func writeServiceError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Appointment does not belong to your elders")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

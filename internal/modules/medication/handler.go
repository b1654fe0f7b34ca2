package medication

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
	g := rg.Group("/medications")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
		g.POST("/:id/log", h.Log)
	}
}

func callerIdentity(c *gin.Context) (int64, domain.UserRole) {
	return c.GetInt64("user_id"), domain.UserRole(c.GetString("role"))
}

func (h *Handler) List(c *gin.Context) {
	userID, role := callerIdentity(c)

	meds, err := h.service.List(c.Request.Context(), userID, role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get medications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"medications": meds})
}

func (h *Handler) Create(c *gin.Context) {
	userID, role := callerIdentity(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
		return
	}

	m, err := h.service.Create(c.Request.Context(), userID, role, req)
	if err != nil {
		writeServiceError(c, err, "Failed to add medication")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"medication_id": m.ID})
}

func (h *Handler) Update(c *gin.Context) {
	userID, role := callerIdentity(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid medication ID")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
		return
	}

	m, err := h.service.Update(c.Request.Context(), userID, role, id, req)
	if err != nil {
		writeServiceError(c, err, "Failed to update medication")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"medication": m})
}

func (h *Handler) Delete(c *gin.Context) {
	userID, role := callerIdentity(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid medication ID")
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), userID, role, id); err != nil {
		writeServiceError(c, err, "Failed to delete medication")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) Log(c *gin.Context) {
	userID, role := callerIdentity(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid medication ID")
		return
	}

	var req LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
		return
	}

	l, err := h.service.LogTaken(c.Request.Context(), userID, role, id, req)
	if err != nil {
		writeServiceError(c, err, "Failed to log medication")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"log_id": l.ID})
}

func writeServiceError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "elder_id is required for caretakers")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Medication does not belong to your elders")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Medication not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

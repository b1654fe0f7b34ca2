package contact

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
	g := rg.Group("/emergency-contacts")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}

func caller(c *gin.Context) (int64, domain.UserRole) {
	return c.GetInt64("user_id"), domain.UserRole(c.GetString("role"))
}

func (h *Handler) List(c *gin.Context) {
	userID, role := caller(c)

	elderID, _ := strconv.ParseInt(c.Query("elder_id"), 10, 64)

	contacts, err := h.service.List(c.Request.Context(), userID, role, elderID)
	if err != nil {
		writeServiceError(c, err, "Failed to get contacts")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"contacts": contacts})
}

func (h *Handler) Create(c *gin.Context) {
	userID, role := caller(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
		return
	}

	ct, err := h.service.Create(c.Request.Context(), userID, role, req)
	if err != nil {
		writeServiceError(c, err, "Failed to add contact")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"contact_id": ct.ID})
}

func (h *Handler) Update(c *gin.Context) {
	userID, role := caller(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid contact ID")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
		return
	}

	ct, err := h.service.Update(c.Request.Context(), userID, role, id, req)
	if err != nil {
		writeServiceError(c, err, "Failed to update contact")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"contact": ct})
}

func (h *Handler) Delete(c *gin.Context) {
	userID, role := caller(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid contact ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, role, id); err != nil {
		writeServiceError(c, err, "Failed to delete contact")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "deleted"})
}

func writeServiceError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Contact does not belong to your elders")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Contact not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

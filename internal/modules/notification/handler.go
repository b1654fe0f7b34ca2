package notification

import (
	"net/http"
	"strconv"

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
	g := rg.Group("/notifications")
	{
		g.GET("", h.ListFeed)
		g.PUT("/:id/read", h.MarkFeedRead)
		g.PUT("/read-all", h.MarkAllFeedRead)
	}

	r := rg.Group("/reminders")
	{
		r.GET("", h.ListReminders)
		r.PUT("/:id/read", h.MarkReminderRead)
		r.DELETE("", h.ClearReminders)
	}

	rg.POST("/push-token", h.RegisterToken)
}

func (h *Handler) ListFeed(c *gin.Context) {
	userID := c.GetInt64("user_id")

	limit, _ := strconv.Atoi(c.Query("limit"))

	items, unread, err := h.service.ListFeed(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get notifications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": items,
		"unread_count":  unread,
	})
}

func (h *Handler) MarkFeedRead(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	if err := h.service.MarkFeedRead(c.Request.Context(), userID, id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark notification read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "read"})
}

func (h *Handler) MarkAllFeedRead(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if err := h.service.MarkAllFeedRead(c.Request.Context(), userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark notifications read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "read"})
}

func (h *Handler) ListReminders(c *gin.Context) {
	userID := c.GetInt64("user_id")

	reminders := h.service.ListReminders(c.Request.Context(), userID)

	response.Success(c, http.StatusOK, gin.H{"reminders": reminders})
}

func (h *Handler) MarkReminderRead(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id := c.Param("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reminder ID")
		return
	}

	if err := h.service.MarkReminderRead(c.Request.Context(), userID, id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark reminder read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "read"})
}

func (h *Handler) ClearReminders(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if err := h.service.ClearReminders(c.Request.Context(), userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to clear reminders")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "cleared"})
}

func (h *Handler) RegisterToken(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req RegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "token is required")
		return
	}

	if err := h.service.RegisterToken(c.Request.Context(), userID, req.Token); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register push token")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "registered"})
}

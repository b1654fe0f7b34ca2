package auth

import (
	"net/http"

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
	g := rg.Group("/auth")
	{
		g.POST("/signup", h.Signup)
		g.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/link-caretaker", h.LinkCaretaker)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
		return
	}

	result, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrEmailTaken:
			response.Error(c, http.StatusBadRequest, "EMAIL_TAKEN", "Email already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register user")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"access_token": result.AccessToken,
		"user": UserResponse{
			ID:       result.User.ID,
			Email:    result.User.Email,
			FullName: result.User.FullName,
			UserType: string(result.User.Role),
		},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"access_token": result.AccessToken,
		"user": UserResponse{
			ID:       result.User.ID,
			Email:    result.User.Email,
			FullName: result.User.FullName,
			Phone:    result.User.Phone,
			UserType: string(result.User.Role),
			Profile:  result.Profile,
		},
	})
}

func (h *Handler) LinkCaretaker(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req LinkCaretakerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields")
		return
	}

	caretaker, err := h.service.LinkCaretaker(c.Request.Context(), userID, req)
	if err != nil {
		switch err {
		case ErrNotElder:
			response.Error(c, http.StatusBadRequest, "NOT_ELDER", "Only elders can link to caretakers")
		case ErrCaretakerNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Caretaker not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to link caretaker")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"caretaker": gin.H{
			"id":    caretaker.ID,
			"name":  caretaker.FullName,
			"email": caretaker.Email,
		},
	})
}

package auth

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	UserType string `json:"user_type" binding:"required,oneof=elder caretaker"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LinkCaretakerRequest struct {
	CaretakerEmail string `json:"caretaker_email" binding:"required,email"`
}

type UserResponse struct {
	ID       int64          `json:"id"`
	Email    string         `json:"email"`
	FullName string         `json:"full_name"`
	Phone    string         `json:"phone,omitempty"`
	UserType string         `json:"user_type"`
	Profile  map[string]any `json:"profile,omitempty"`
}

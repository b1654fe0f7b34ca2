package auth

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotElder           = errors.New("only elders can link to caretakers")
	ErrCaretakerNotFound  = errors.New("caretaker not found")
)

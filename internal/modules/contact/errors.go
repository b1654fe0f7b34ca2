package contact

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("contact does not belong to your elders")
	ErrNotFound   = errors.New("contact not found")
)

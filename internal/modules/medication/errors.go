package medication

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("medication does not belong to your elders")
	ErrNotFound   = errors.New("medication not found")
)

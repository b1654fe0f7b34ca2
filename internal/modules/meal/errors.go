package meal

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("meal does not belong to your elders")
	ErrNotFound   = errors.New("meal not found")
)

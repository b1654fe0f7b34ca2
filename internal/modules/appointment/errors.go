package appointment

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("appointment does not belong to your elders")
	ErrNotFound   = errors.New("appointment not found")
)

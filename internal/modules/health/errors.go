package health

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("elder is not in your care")
)

package location

import "errors"

var (
	ErrForbidden = errors.New("elder is not in your care")
	ErrNotFound  = errors.New("no location recorded")
)

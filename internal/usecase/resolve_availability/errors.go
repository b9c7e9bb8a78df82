package resolve_availability

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date")
)

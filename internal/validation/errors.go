package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrValidation базовая ошибка валидации
var ErrValidation = errors.New("validation failed")

// Error ошибки по полям формы: поле (json имя) -> сообщение для пользователя
type Error struct {
	FieldErrors map[string]string
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.FieldErrors))
	for field := range e.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(fields, ", "))
}

func (e *Error) Unwrap() error {
	return ErrValidation
}

func (e *Error) add(field, message string) {
	if e.FieldErrors == nil {
		e.FieldErrors = make(map[string]string)
	}
	if _, exists := e.FieldErrors[field]; !exists {
		e.FieldErrors[field] = message
	}
}

func (e *Error) orNil() error {
	if len(e.FieldErrors) == 0 {
		return nil
	}
	return e
}

package submit_reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrSubmissionFailed возвращается, когда все попытки отправки исчерпаны
	ErrSubmissionFailed = errors.New("submission failed")

	// ErrQueueUnavailable возвращается, когда офлайн очередь недоступна
	ErrQueueUnavailable = errors.New("offline queue unavailable")

	// ErrInvalidPayload возвращается для тела без formId
	ErrInvalidPayload = errors.New("invalid submission payload")
)

// FailedError отправка не удалась после всех попыток
// Message - сообщение для пользователя (от сервиса или стандартное)
type FailedError struct {
	Message  string
	Attempts int
	Err      error
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("%v after %d attempts: %v", ErrSubmissionFailed, e.Attempts, e.Err)
}

func (e *FailedError) Unwrap() []error {
	return []error{ErrSubmissionFailed, e.Err}
}

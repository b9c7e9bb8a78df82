package session

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrSubmissionInProgress возвращается, если отправка уже выполняется
	ErrSubmissionInProgress = errors.New("session: submission already in progress")

	// ErrClosed возвращается после Close
	ErrClosed = errors.New("session: closed")

	// ErrBlocked базовая ошибка для шага, который нельзя пройти
	ErrBlocked = errors.New("session: step is blocked")

	// ErrSessionNotFound возвращается менеджером для неизвестного id
	ErrSessionNotFound = errors.New("session: not found")
)

// BlockedError причины, по которым нельзя перейти дальше: поле -> сообщение
type BlockedError struct {
	Step    int
	Reasons map[string]string
}

func (e *BlockedError) Error() string {
	fields := make([]string, 0, len(e.Reasons))
	for field := range e.Reasons {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%v: step %d: %s", ErrBlocked, e.Step, strings.Join(fields, ", "))
}

func (e *BlockedError) Unwrap() error {
	return ErrBlocked
}

package webhooks

import (
	"errors"
	"fmt"
	"net"
	"syscall"
)

var (
	// ErrConnectivity возвращается, когда внешний сервис недостижим (соединение отклонено, хост не найден)
	ErrConnectivity = errors.New("webhooks client: service unreachable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("webhooks client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("webhooks client: invalid response")

	// ErrRejected возвращается, когда сервис явно ответил success=false
	ErrRejected = errors.New("webhooks client: reservation rejected")
)

// StatusError ответ сервиса с неуспешным HTTP статусом
type StatusError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: unexpected status code %d: %s", ErrInvalidResponse, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrInvalidResponse
}

// IsConnectivityError возвращает true для ошибок класса "точно нет сети":
// соединение отклонено, хост/сеть недостижимы, DNS не разрешил имя
// Таймауты сюда не относятся - сервис мог получить запрос
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConnectivity) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}

	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) && !dnsErr.IsTimeout
}

// ServiceMessage извлекает сообщение сервиса из ошибки (если оно было в теле ответа)
func ServiceMessage(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message
	}
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Message
	}
	return ""
}

// RejectedError ответ 2xx с success=false
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%v: %s", ErrRejected, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}

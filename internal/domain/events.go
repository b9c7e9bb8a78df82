package domain

import "time"

// Типы событий бронирования
const (
	EventReservationSent   = "reservation.sent"
	EventReservationQueued = "reservation.queued"
)

// ReservationEvent событие о судьбе отправки
type ReservationEvent struct {
	Type       string            `json:"type"`
	FormID     string            `json:"formId"`
	OccurredAt time.Time         `json:"occurredAt"`
	Payload    SubmissionPayload `json:"payload"`
}

package webhooks

import (
	"encoding/json"

	"github.com/m04kA/Mercearia-ReservationService/pkg/types"
)

// availabilityConfigResponse ответ check-availability; все поля необязательны
type availabilityConfigResponse struct {
	DefaultTimeSlots []string            `json:"defaultTimeSlots"`
	BlockedDates     []string            `json:"blockedDates"`
	Exceptions       []exceptionResponse `json:"exceptions"`
	BlockedWeekdays  []int               `json:"blockedWeekdays"`
	Message          string              `json:"message"`
}

type exceptionResponse struct {
	Date      string   `json:"date"`
	TimeSlots []string `json:"timeSlots"`
	Message   string   `json:"message"`
}

// panelAvailabilityResponse ответ check-panel-availability
type panelAvailabilityResponse struct {
	Available *bool  `json:"available"`
	Count     *int   `json:"count"`
	Message   string `json:"message"`
}

// spotAvailabilityResponse ответ check-spots-available
type spotAvailabilityResponse struct {
	Available types.Tristate `json:"available"`
	Message   string         `json:"message"`
}

// SubmitResponse ответ webhook'а бронирования
type SubmitResponse struct {
	Success *bool           `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// errorResponse тело ошибки от сервиса
type errorResponse struct {
	Message string `json:"message"`
}

package domain

import "time"

// Форматы даты и времени
const (
	TimeFormat   = "15:04"      // HH:MM
	DateFormat   = "2006-01-02" // YYYY-MM-DD
	DateFormatBR = "02/01/2006" // DD/MM/YYYY
)

// Правила бронирования
const (
	// SameDayCutoffHour после этого часа бронирования на сегодня закрываются
	SameDayCutoffHour = 18

	// PanelMinPartySize минимальное количество гостей для бронирования панели
	PanelMinPartySize = 10

	MinPartySize = 4
	MaxPartySize = 50

	MinNameLength          = 3
	MinAge                 = 18
	MaxAge                 = 120
	MaxNotesLength         = 1000
	MaxOrientationsLength  = 500
	MaxPanelPhotoSizeBytes = 5 * 1024 * 1024
)

// Параметры по умолчанию для слотов времени (18:00 - 20:30, шаг 30 минут)
const (
	DefaultFirstSlot        = "18:00"
	DefaultLastSlot         = "20:30"
	DefaultSlotStepMinutes  = 30
	DefaultBlockedWeekday   = int(time.Sunday)
	DefaultDebounceInterval = 500 * time.Millisecond
)

// Шаги формы
const (
	StepPersonalData       = 1
	StepReservationDetails = 2
	StepSummary            = 3
)

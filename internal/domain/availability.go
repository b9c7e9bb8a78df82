package domain

import (
	"github.com/m04kA/Mercearia-ReservationService/pkg/types"
)

// AvailabilityConfig общая конфигурация доступности, получаемая из внешнего сервиса
// Приоритет правил: Exceptions > BlockedDates/BlockedWeekdays > DefaultTimeSlots
type AvailabilityConfig struct {
	DefaultTimeSlots []string        `json:"defaultTimeSlots"`
	BlockedDates     []string        `json:"blockedDates"`
	Exceptions       []DateException `json:"exceptions"`
	BlockedWeekdays  []int           `json:"blockedWeekdays"`
	Message          string          `json:"message"`
}

// DateException переопределение слотов для конкретной даты
// Пустой TimeSlots означает, что дата полностью закрыта
type DateException struct {
	Date      string   `json:"date"`
	TimeSlots []string `json:"timeSlots"`
	Message   string   `json:"message"`
}

// AvailabilityResult результат вычисления доступности даты
type AvailabilityResult struct {
	Date          string   `json:"date"`
	Bookable      bool     `json:"bookable"`
	TimeSlots     []string `json:"timeSlots"`
	Message       string   `json:"message"`
	ConfigMessage string   `json:"configMessage,omitempty"`
}

// HasTimeSlot проверяет, что время входит в список доступных слотов
func (r *AvailabilityResult) HasTimeSlot(slot string) bool {
	for _, s := range r.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// FindException ищет исключение для даты
func (c *AvailabilityConfig) FindException(date string) (*DateException, bool) {
	for i := range c.Exceptions {
		if c.Exceptions[i].Date == date {
			return &c.Exceptions[i], true
		}
	}
	return nil, false
}

// IsDateBlocked возвращает true, если дата входит в список закрытых дат
func (c *AvailabilityConfig) IsDateBlocked(date string) bool {
	for _, d := range c.BlockedDates {
		if d == date {
			return true
		}
	}
	return false
}

// IsWeekdayBlocked возвращает true, если день недели закрыт (0 = воскресенье)
func (c *AvailabilityConfig) IsWeekdayBlocked(weekday int) bool {
	for _, w := range c.BlockedWeekdays {
		if w == weekday {
			return true
		}
	}
	return false
}

// WithDefaults возвращает копию конфигурации, где отсутствующие поля заменены значениями по умолчанию
// nil означает "поле не пришло", пустой список остается пустым
func (c AvailabilityConfig) WithDefaults() AvailabilityConfig {
	if c.DefaultTimeSlots == nil {
		c.DefaultTimeSlots = DefaultTimeSlots()
	}
	if c.BlockedDates == nil {
		c.BlockedDates = []string{}
	}
	if c.Exceptions == nil {
		c.Exceptions = []DateException{}
	}
	if c.BlockedWeekdays == nil {
		c.BlockedWeekdays = []int{DefaultBlockedWeekday}
	}
	return c
}

// DefaultAvailabilityConfig конфигурация, используемая при недоступности внешнего сервиса
func DefaultAvailabilityConfig() AvailabilityConfig {
	return AvailabilityConfig{}.WithDefaults()
}

// DefaultTimeSlots генерирует слоты по умолчанию с 18:00 до 20:30 с шагом 30 минут
func DefaultTimeSlots() []string {
	first := types.MustTimeString(DefaultFirstSlot)
	last := types.MustTimeString(DefaultLastSlot)

	slots := make([]string, 0, 6)
	for current := first; !current.IsAfter(last); {
		slots = append(slots, current.String())

		next, err := current.AddMinutes(DefaultSlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}
	return slots
}

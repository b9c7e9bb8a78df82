package resolve_availability

import (
	"time"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

// Resolver вычисляет доступность даты по конфигурации
type Resolver struct {
	// CutoffHour начиная с этого часа бронирования на сегодня закрыты
	CutoffHour int
}

// NewResolver создает резолвер с часом закрытия по умолчанию
func NewResolver() Resolver {
	return Resolver{CutoffHour: domain.SameDayCutoffHour}
}

// Resolve вычисляет доступность с часом закрытия по умолчанию
func Resolve(config domain.AvailabilityConfig, date string, now time.Time) domain.AvailabilityResult {
	return NewResolver().Resolve(config, date, now)
}

// Resolve проверяет правила в строгом порядке:
// прошедшая дата, сегодня после закрытия, исключение, закрытая дата, закрытый день недели, слоты по умолчанию
// "Сегодня" определяется во временной зоне now
func (r Resolver) Resolve(config domain.AvailabilityConfig, date string, now time.Time) domain.AvailabilityResult {
	result := domain.AvailabilityResult{
		Date:          date,
		TimeSlots:     []string{},
		ConfigMessage: config.Message,
	}

	candidate, err := domain.ParseDate(date, now.Location())
	if err != nil {
		result.Message = domain.MsgDateUnavailable
		return result
	}
	today := domain.DateOnly(now)

	// 1. Прошедшая дата
	if candidate.Before(today) {
		result.Message = domain.MsgPastDate
		return result
	}

	// 2. Сегодня после часа закрытия
	if candidate.Equal(today) && now.Hour() >= r.CutoffHour {
		result.Message = domain.MsgTodayClosed
		return result
	}

	// 3. Исключение имеет приоритет над закрытыми датами и днями недели
	if exception, ok := config.FindException(date); ok {
		if len(exception.TimeSlots) > 0 {
			result.Bookable = true
			result.TimeSlots = append(result.TimeSlots, exception.TimeSlots...)
			result.Message = exception.Message
			return result
		}

		result.Message = exception.Message
		if result.Message == "" {
			result.Message = domain.MsgDateUnavailable
		}
		return result
	}

	// 4. Закрытая дата
	if config.IsDateBlocked(date) {
		result.Message = domain.MsgDateUnavailable
		return result
	}

	// 5. Закрытый день недели
	weekday := candidate.Weekday()
	if config.IsWeekdayBlocked(int(weekday)) {
		if weekday == time.Sunday {
			result.Message = domain.MsgSundayClosed
		} else {
			result.Message = domain.MsgWeekdayClosed
		}
		return result
	}

	// 6. Слоты по умолчанию
	result.Bookable = true
	result.TimeSlots = append(result.TimeSlots, config.DefaultTimeSlots...)
	return result
}

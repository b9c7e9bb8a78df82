package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// ParseDate разбирает дату YYYY-MM-DD как полночь в указанной временной зоне
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateFormat, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// DateOnly возвращает полночь того же календарного дня
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDateBR конвертирует YYYY-MM-DD в DD/MM/YYYY
// Для пустой или некорректной даты возвращает пустую строку
func FormatDateBR(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return ""
	}
	return t.Format(DateFormatBR)
}

// ParseDateBR конвертирует DD/MM/YYYY в YYYY-MM-DD
// День и месяц дополняются нулями слева, как в исходной форме ("1/2/2025" -> "2025-02-01")
func ParseDateBR(date string) string {
	if date == "" {
		return ""
	}

	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return ""
	}

	day, month, year := parts[0], parts[1], parts[2]
	return fmt.Sprintf("%s-%s-%s", year, padLeft(month, 2), padLeft(day, 2))
}

// FormatPhoneBR форматирует номер телефона как (XX) XXXXX-XXXX по мере ввода
func FormatPhoneBR(value string) string {
	digits := make([]rune, 0, len(value))
	for _, r := range value {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) > 11 {
		digits = digits[:11]
	}

	n := len(digits)
	switch {
	case n == 0:
		return ""
	case n < 3:
		return string(digits)
	case n < 7:
		return fmt.Sprintf("(%s) %s", string(digits[:2]), string(digits[2:]))
	default:
		return fmt.Sprintf("(%s) %s-%s", string(digits[:2]), string(digits[2:7]), string(digits[7:]))
	}
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

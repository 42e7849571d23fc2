package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidHourFormat возвращается, когда строку времени невозможно
	// нормализовать в целый час
	ErrInvalidHourFormat = errors.New("types: invalid hour format")

	// ErrHourOutOfRange возвращается, когда час вне диапазона 0-23
	ErrHourOutOfRange = errors.New("types: hour out of range")
)

// HourOfDay канонический целочисленный час (0-23) в бизнес-таймзоне
// Единственное внутреннее представление времени сессии: все входные форматы
// ("17:00", "5PM", "17") нормализуются на границе через ParseHourOfDay
type HourOfDay int

// ParseHourOfDay нормализует строку времени в канонический час
// Поддерживаемые форматы:
//   - 24-часовой с двоеточием: "17:00" (минуты должны быть "00" - сетка почасовая)
//   - 12-часовой с суффиксом:  "5PM", "5 pm", "12AM" (полночь), "12PM" (полдень)
//   - голый час:               "17"
func ParseHourOfDay(s string) (HourOfDay, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidHourFormat)
	}

	upper := strings.ToUpper(raw)

	// 12-часовой формат с суффиксом AM/PM
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		return parse12Hour(upper)
	}

	// 24-часовой формат HH:MM
	if strings.Contains(raw, ":") {
		return parse24Hour(raw)
	}

	// Голый час
	hour, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHourFormat, s)
	}
	return newHour(hour)
}

// MustParseHourOfDay парсит строку времени, паникуя при ошибке
// Только для тестов и констант
func MustParseHourOfDay(s string) HourOfDay {
	h, err := ParseHourOfDay(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Int возвращает час как int
func (h HourOfDay) Int() int {
	return int(h)
}

// String возвращает каноническое строковое представление "HH:00"
func (h HourOfDay) String() string {
	return fmt.Sprintf("%02d:00", int(h))
}

// Valid проверяет, что час в диапазоне 0-23
func (h HourOfDay) Valid() bool {
	return h >= 0 && h <= 23
}

func parse12Hour(upper string) (HourOfDay, error) {
	suffix := upper[len(upper)-2:]
	body := strings.TrimSpace(upper[:len(upper)-2])

	// Допускаем "5:00PM" наравне с "5PM"
	if idx := strings.Index(body, ":"); idx >= 0 {
		minutes := body[idx+1:]
		if minutes != "00" {
			return 0, fmt.Errorf("%w: non-zero minutes in %q", ErrInvalidHourFormat, body+suffix)
		}
		body = body[:idx]
	}

	hour, err := strconv.Atoi(body)
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHourFormat, body+suffix)
	}

	// 12AM = 0, 12PM = 12
	if hour == 12 {
		hour = 0
	}
	if suffix == "PM" {
		hour += 12
	}

	return newHour(hour)
}

func parse24Hour(raw string) (HourOfDay, error) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHourFormat, raw)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHourFormat, raw)
	}

	minutes := strings.TrimSpace(parts[1])
	if minutes != "00" {
		return 0, fmt.Errorf("%w: non-zero minutes in %q", ErrInvalidHourFormat, raw)
	}

	return newHour(hour)
}

func newHour(hour int) (HourOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %d", ErrHourOutOfRange, hour)
	}
	return HourOfDay(hour), nil
}

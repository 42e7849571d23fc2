package get_week_availability

import (
	"time"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

// computeWeekAvailability вычисляет доступность всех слотов недели
// Чистая функция своих аргументов - без скрытого состояния, повторный вызов
// с теми же входами даёт тот же результат.
//
// Алгоритм:
//  1. Каждый слот недели изначально доступен.
//  2. Слоты неотменённых сессий тренера помечаются занятыми.
//     Отменённые сессии слот НЕ держат - он снова доступен для бронирования.
//  3. Прошедшие даты и сегодняшние слоты ближе часа до начала недоступны.
func computeWeekAvailability(weekStart time.Time, sessions []*domain.Session, now time.Time) map[string]bool {
	availability := make(map[string]bool, 7*len(domain.HoursOfDay()))

	// 1. Засеваем все слоты недели как доступные
	for _, day := range domain.WeekDays(weekStart) {
		for _, hour := range domain.HoursOfDay() {
			availability[domain.SlotKey(day, hour)] = true
		}
	}

	// 2. Помечаем слоты неотменённых сессий занятыми
	for _, s := range sessions {
		if !s.IsActive() {
			continue
		}
		// Час вне сетки не может занять ни один слот
		// (перестраховка от некорректных данных: скрыть ложно-свободный
		// слот хуже, чем показать лишний занятый)
		if !s.HourOfDay.Valid() || !domain.IsBookableHour(s.HourOfDay.Int()) {
			continue
		}
		key := s.SlotKey()
		if _, ok := availability[key]; ok {
			availability[key] = false
		}
	}

	// 3. Применяем отсечку по времени: прошлое и ближайший час недоступны
	for _, day := range domain.WeekDays(weekStart) {
		for _, hour := range domain.HoursOfDay() {
			if domain.WithinBookingCutoff(day, hour, now) {
				availability[domain.SlotKey(day, hour)] = false
			}
		}
	}

	return availability
}

// buildDays раскладывает карту доступности в упорядоченный ответ по дням
func buildDays(weekStart time.Time, availability map[string]bool) []Day {
	hours := domain.HoursOfDay()
	days := make([]Day, 0, 7)

	for _, date := range domain.WeekDays(weekStart) {
		slots := make([]Slot, 0, len(hours))
		for _, hour := range hours {
			slots = append(slots, Slot{
				Hour:      types.HourOfDay(hour),
				Available: availability[domain.SlotKey(date, hour)],
			})
		}
		days = append(days, Day{Date: date, Slots: slots})
	}

	return days
}

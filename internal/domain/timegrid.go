package domain

import (
	"fmt"
	"time"
)

// Сетка расписания: неделя с понедельника, почасовые слоты в рабочем окне.
// Все функции чистые и оперируют календарными компонентами (год-месяц-день),
// а не моментами времени - чтобы конверсия таймзон не сдвигала день

// WeekStart нормализует произвольную дату к понедельнику её ISO-недели
// Время обнуляется, локация сохраняется
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	// time.Sunday = 0, а неделя начинается с понедельника
	if weekday == 0 {
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}

// WeekDays возвращает 7 дней недели начиная с weekStart (понедельник..воскресенье)
func WeekDays(weekStart time.Time) [7]time.Time {
	var days [7]time.Time
	for i := 0; i < 7; i++ {
		days[i] = weekStart.AddDate(0, 0, i)
	}
	return days
}

// HoursOfDay возвращает рабочие часы одного дня (8..23 включительно, 16 слотов)
func HoursOfDay() []int {
	hours := make([]int, 0, LastBookableHour-FirstBookableHour+1)
	for h := FirstBookableHour; h <= LastBookableHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// IsBookableHour проверяет, что час попадает в рабочее окно
func IsBookableHour(hour int) bool {
	return hour >= FirstBookableHour && hour <= LastBookableHour
}

// SlotKey возвращает каноничный ключ слота "YYYY-MM-DD#HH"
// Ключ строится из календарных компонент даты, не из инстанта
func SlotKey(date time.Time, hour int) string {
	return fmt.Sprintf("%04d-%02d-%02d#%02d", date.Year(), int(date.Month()), date.Day(), hour)
}

// SameDay проверяет, что две даты относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateInPast проверяет, что дата раньше сегодняшнего дня
// Сравниваем календарные компоненты: date приходит из запроса в UTC,
// now - в локации сервера, и сравнение инстантов сдвигало бы день
func DateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// WithinBookingCutoff проверяет, что слот уже нельзя бронировать:
// дата в прошлом, либо слот сегодняшний и до его начала осталось
// меньше BookingCutoffMinutes (now >= slotStart - cutoff)
func WithinBookingCutoff(date time.Time, hour int, now time.Time) bool {
	if DateInPast(date, now) {
		return true
	}
	if !SameDay(date, now) {
		return false
	}
	nowMinutes := now.Hour()*60 + now.Minute()
	return nowMinutes+BookingCutoffMinutes >= hour*60
}

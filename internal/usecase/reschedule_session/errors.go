package reschedule_session

import "errors"

var (
	// ErrSessionNotFound сессия не найдена
	ErrSessionNotFound = errors.New("reschedule_session: session not found")

	// ErrCannotReschedule сессия в статусе, не допускающем перенос
	ErrCannotReschedule = errors.New("reschedule_session: session cannot be rescheduled in its current status")

	// ErrSlotTaken новый слот уже занят другой активной сессией
	ErrSlotTaken = errors.New("reschedule_session: slot already taken")

	// ErrInvalidDate новая дата в прошлом или некорректна
	ErrInvalidDate = errors.New("reschedule_session: invalid session date")

	// ErrInvalidHour новый час вне сетки бронирования
	ErrInvalidHour = errors.New("reschedule_session: hour outside bookable grid")

	// ErrTooLateToBook до нового слота осталось меньше часа
	ErrTooLateToBook = errors.New("reschedule_session: too late to book this slot")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("reschedule_session: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("reschedule_session: internal error")
)

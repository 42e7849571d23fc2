package get_week_availability

import "errors"

var (
	// ErrCoachNotFound возвращается, когда тренер не найден
	ErrCoachNotFound = errors.New("get_week_availability: coach not found")

	// ErrCoachInactive возвращается, когда тренер неактивен
	// Неактивные тренеры исключены из бронирования
	ErrCoachInactive = errors.New("get_week_availability: coach is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_week_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_week_availability: internal error")
)

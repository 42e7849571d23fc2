package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrCannotCancel возвращается, когда сессию нельзя отменить
	// (она уже завершена или отменена)
	ErrCannotCancel = errors.New("session cannot be cancelled")

	// ErrCannotComplete возвращается, когда сессию нельзя завершить
	ErrCannotComplete = errors.New("session cannot be completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

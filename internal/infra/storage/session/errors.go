package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrSlotTaken возвращается, когда слот уже занят другой активной сессией
	// Срабатывает на частичном уникальном индексе (coach_id, session_date, hour_of_day)
	// WHERE status <> 'cancelled' - страховка на случай гонки, прошедшей прикладную проверку
	ErrSlotTaken = errors.New("session.repository: slot already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")
)

package clientpack

import "errors"

var (
	// ErrPackNotFound возвращается, когда пакет не найден
	ErrPackNotFound = errors.New("clientpack.repository: pack not found")

	// ErrNoSessionsLeft возвращается, когда атомарное списание обнаружило,
	// что занятий в пакете уже не осталось (проигранная гонка за последнее занятие)
	ErrNoSessionsLeft = errors.New("clientpack.repository: no sessions left to consume")

	// ErrPackFull возвращается при попытке вернуть занятие в полный пакет
	// Защита инварианта remaining_sessions <= total_sessions
	ErrPackFull = errors.New("clientpack.repository: pack already has all sessions")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("clientpack.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("clientpack.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("clientpack.repository: failed to scan row")
)

package book_session

import "errors"

var (
	// ErrCoachNotFound возвращается, когда тренер не найден
	ErrCoachNotFound = errors.New("book_session: coach not found")

	// ErrCoachInactive возвращается, когда тренер неактивен
	ErrCoachInactive = errors.New("book_session: coach is inactive")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("book_session: client not found")

	// ErrPackNotFound возвращается, когда пакет занятий не найден
	ErrPackNotFound = errors.New("book_session: client pack not found")

	// ErrPackNotOwned возвращается, когда пакет принадлежит другому клиенту
	ErrPackNotOwned = errors.New("book_session: pack belongs to another client")

	// Причины непригодности пакета - возвращаются конкретно,
	// UI различает "выберите другой слот" и "купите новый пакет"

	// ErrPackInactive возвращается, когда пакет деактивирован
	ErrPackInactive = errors.New("book_session: pack is inactive")

	// ErrPackExpired возвращается, когда срок пакета истёк
	ErrPackExpired = errors.New("book_session: pack is expired")

	// ErrPackExhausted возвращается, когда занятий в пакете не осталось
	// В том числе при проигранной гонке за последнее занятие
	ErrPackExhausted = errors.New("book_session: pack has no sessions left")

	// ErrPackWrongState возвращается, когда покупка пакета не завершена
	ErrPackWrongState = errors.New("book_session: pack purchase is not completed")

	// ErrSlotTaken возвращается, когда слот уже занят другой сессией
	// Вызывающий должен перезапросить сетку доступности, не повторять тот же слот
	ErrSlotTaken = errors.New("book_session: slot is already taken")

	// ErrInvalidDate возвращается при некорректной дате сессии (в прошлом)
	ErrInvalidDate = errors.New("book_session: invalid session date")

	// ErrInvalidHour возвращается, когда час вне рабочего окна 08:00-23:00
	ErrInvalidHour = errors.New("book_session: hour outside business hours")

	// ErrTooLateToBook возвращается, когда до начала слота осталось меньше часа
	ErrTooLateToBook = errors.New("book_session: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_session: internal error")
)

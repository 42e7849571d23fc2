package packs

import "errors"

var (
	// ErrPackNotFound возвращается, когда пакет не найден
	ErrPackNotFound = errors.New("pack not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

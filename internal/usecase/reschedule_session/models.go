package reschedule_session

import (
	"time"

	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

// Request модель запроса на перенос сессии
type Request struct {
	SessionID int64           // ID переносимой сессии
	NewDate   time.Time       // Новая дата сессии (без времени)
	NewHour   types.HourOfDay // Новый час начала
}

// Response модель ответа с перенесённой сессией
type Response struct {
	ID          int64           // ID сессии
	CoachID     int64           // ID тренера
	ClientID    int64           // ID клиента
	SessionDate time.Time       // Новая дата сессии
	Hour        types.HourOfDay // Новый час начала
	Status      string          // Статус сессии
}

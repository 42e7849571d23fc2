package book_session

import (
	"time"

	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

// Request модель запроса на бронирование сессии
type Request struct {
	CoachID      int64           // ID тренера
	ClientID     int64           // ID клиента
	ClientPackID *int64          // ID пакета занятий (обязателен для платной сессии)
	Date         time.Time       // Дата сессии (без времени)
	Hour         types.HourOfDay // Час начала (канонический, нормализован на границе)
	Location     *string         // Место проведения (опционально)
	IsFree       bool            // Бесплатная сессия - занятие с пакета не списывается
}

// Response модель ответа с созданной сессией
type Response struct {
	ID              int64           // ID созданной сессии
	CoachID         int64           // ID тренера
	ClientID        int64           // ID клиента
	ClientPackID    *int64          // ID пакета, с которого списано занятие
	SessionDate     time.Time       // Дата сессии
	Hour            types.HourOfDay // Час начала
	DurationMinutes int             // Длительность в минутах
	Location        *string         // Место проведения
	Status          string          // Статус сессии
	IsFree          bool            // Бесплатная сессия

	// Денормализованные данные
	CoachName  *string // Имя тренера
	ClientName *string // Имя клиента

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

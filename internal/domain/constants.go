package domain

// Рабочее окно дня: почасовые слоты с 08:00 по 23:00 включительно (16 слотов)
const (
	FirstBookableHour = 8
	LastBookableHour  = 23
)

// Default session values
const (
	DefaultSessionDurationMinutes = 60

	// BookingCutoffMinutes минимальное время до начала слота, после которого
	// бронирование закрыто (1 час)
	BookingCutoffMinutes = 60
)

// Business validation constants
const (
	MaxLocationLength           = 255
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidStatuses все допустимые статусы сессии
var ValidStatuses = []SessionStatus{
	StatusPending,
	StatusScheduled,
	StatusCompleted,
	StatusCancelled,
}

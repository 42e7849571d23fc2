package get_week_availability

import (
	"time"

	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

// Request модель запроса на получение недельной сетки доступности тренера
type Request struct {
	CoachID    int64     // ID тренера
	WeekAnchor time.Time // Любая дата внутри интересующей недели
}

// Response модель ответа с недельной сеткой слотов
type Response struct {
	CoachID   int64     // ID тренера
	CoachName string    // Имя тренера (денормализовано для UI)
	WeekStart time.Time // Понедельник недели
	Days      []Day     // 7 дней, понедельник..воскресенье
}

// Day слоты одного дня
type Day struct {
	Date  time.Time // Календарная дата
	Slots []Slot    // 16 почасовых слотов (08:00..23:00)
}

// Slot один почасовой слот
type Slot struct {
	Hour      types.HourOfDay // Час начала
	Available bool            // Доступен ли слот для бронирования
}

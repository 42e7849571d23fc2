package get_week_availability

import (
	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	getWeekAvailability "github.com/younesAM01/StayFit-BookingService/internal/usecase/get_week_availability"
)

// WeekAvailabilityResponse HTTP response model
type WeekAvailabilityResponse struct {
	CoachID   int64         `json:"coachId"`
	CoachName string        `json:"coachName"`
	WeekStart string        `json:"weekStart"`
	Days      []DayResponse `json:"days"`
}

// DayResponse слоты одного дня
type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse один почасовой слот
type SlotResponse struct {
	Hour      string `json:"hour"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekAvailability.Response) *WeekAvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, SlotResponse{
				Hour:      slot.Hour.String(),
				Available: slot.Available,
			})
		}
		days = append(days, DayResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		})
	}

	return &WeekAvailabilityResponse{
		CoachID:   resp.CoachID,
		CoachName: resp.CoachName,
		WeekStart: resp.WeekStart.Format(domain.DateFormat),
		Days:      days,
	}
}

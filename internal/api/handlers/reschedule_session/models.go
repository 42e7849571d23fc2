package reschedule_session

import (
	"time"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	rescheduleSession "github.com/younesAM01/StayFit-BookingService/internal/usecase/reschedule_session"
	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

// RescheduleSessionRequest HTTP request model
type RescheduleSessionRequest struct {
	NewDate string `json:"newDate"` // "2026-09-08"
	NewHour string `json:"newHour"` // "18:00", "6PM" или "18"
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID          int64  `json:"id"`
	CoachID     int64  `json:"coachId"`
	ClientID    int64  `json:"clientId"`
	SessionDate string `json:"sessionDate"`
	Hour        string `json:"hour"`
	Status      string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleSessionRequest) ToUseCaseRequest(sessionID int64) (*rescheduleSession.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	newHour, err := types.ParseHourOfDay(r.NewHour)
	if err != nil {
		return nil, err
	}

	return &rescheduleSession.Request{
		SessionID: sessionID,
		NewDate:   newDate,
		NewHour:   newHour,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:          resp.ID,
		CoachID:     resp.CoachID,
		ClientID:    resp.ClientID,
		SessionDate: resp.SessionDate.Format(domain.DateFormat),
		Hour:        resp.Hour.String(),
		Status:      resp.Status,
	}
}

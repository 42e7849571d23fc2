package book_session

import (
	"time"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	bookSession "github.com/younesAM01/StayFit-BookingService/internal/usecase/book_session"
	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

// BookSessionRequest HTTP request model
type BookSessionRequest struct {
	CoachID      int64   `json:"coachId"`
	ClientID     int64   `json:"clientId"`
	ClientPackID *int64  `json:"clientPackId,omitempty"`
	SessionDate  string  `json:"sessionDate"` // "2026-09-07"
	Hour         string  `json:"hour"`        // "17:00", "5PM" или "17"
	Location     *string `json:"location,omitempty"`
	IsFree       bool    `json:"isFree,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID              int64   `json:"id"`
	CoachID         int64   `json:"coachId"`
	ClientID        int64   `json:"clientId"`
	ClientPackID    *int64  `json:"clientPackId,omitempty"`
	SessionDate     string  `json:"sessionDate"`
	Hour            string  `json:"hour"`
	DurationMinutes int     `json:"durationMinutes"`
	Location        *string `json:"location,omitempty"`
	Status          string  `json:"status"`
	IsFree          bool    `json:"isFree"`
	CoachName       *string `json:"coachName,omitempty"`
	ClientName      *string `json:"clientName,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Час нормализуется здесь: дальше по конвейеру ходит только канонический HourOfDay
func (r *BookSessionRequest) ToUseCaseRequest() (*bookSession.Request, error) {
	sessionDate, err := time.Parse(domain.DateFormat, r.SessionDate)
	if err != nil {
		return nil, err
	}

	hour, err := types.ParseHourOfDay(r.Hour)
	if err != nil {
		return nil, err
	}

	return &bookSession.Request{
		CoachID:      r.CoachID,
		ClientID:     r.ClientID,
		ClientPackID: r.ClientPackID,
		Date:         sessionDate,
		Hour:         hour,
		Location:     r.Location,
		IsFree:       r.IsFree,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:              resp.ID,
		CoachID:         resp.CoachID,
		ClientID:        resp.ClientID,
		ClientPackID:    resp.ClientPackID,
		SessionDate:     resp.SessionDate.Format(domain.DateFormat),
		Hour:            resp.Hour.String(),
		DurationMinutes: resp.DurationMinutes,
		Location:        resp.Location,
		Status:          resp.Status,
		IsFree:          resp.IsFree,
		CoachName:       resp.CoachName,
		ClientName:      resp.ClientName,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

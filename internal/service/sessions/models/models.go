package models

import (
	"errors"
	"time"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid session status")
)

// Request модели

// CancelSessionRequest запрос на отмену сессии
type CancelSessionRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetClientSessionsRequest запрос на получение сессий клиента
type GetClientSessionsRequest struct {
	ClientID int64   `json:"clientId"`
	Status   *string `json:"status,omitempty"`
}

// GetCoachSessionsRequest запрос на получение сессий тренера
type GetCoachSessionsRequest struct {
	CoachID         int64      `json:"coachId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые сессии
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetCoachSessionsRequest) ToDomainFilter() (domain.CoachSessionsFilter, error) {
	filter := domain.CoachSessionsFilter{
		CoachID:         r.CoachID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainSessionStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// SessionResponse ответ с данными сессии
type SessionResponse struct {
	ID              int64   `json:"id"`
	CoachID         int64   `json:"coachId"`
	ClientID        int64   `json:"clientId"`
	ClientPackID    *int64  `json:"clientPackId,omitempty"`
	SessionDate     string  `json:"sessionDate"` // "2025-03-10"
	StartTime       string  `json:"startTime"`   // "14:00"
	DurationMinutes int     `json:"durationMinutes"`
	Location        *string `json:"location,omitempty"`
	Status          string  `json:"status"`
	IsFree          bool    `json:"isFree"`

	// Денормализованные данные
	CoachName  *string `json:"coachName,omitempty"`
	ClientName *string `json:"clientName,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionListResponse ответ со списком сессий
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// Методы конвертации

// FromDomainSession конвертирует domain модель в DTO
func FromDomainSession(s *domain.Session) *SessionResponse {
	if s == nil {
		return nil
	}

	resp := &SessionResponse{
		ID:                 s.ID,
		CoachID:            s.CoachID,
		ClientID:           s.ClientID,
		ClientPackID:       s.ClientPackID,
		SessionDate:        s.SessionDate.Format(domain.DateFormat),
		StartTime:          s.HourOfDay.String(),
		DurationMinutes:    s.DurationMinutes,
		Location:           s.Location,
		Status:             string(s.Status),
		IsFree:             s.IsFree,
		CoachName:          s.CoachName,
		ClientName:         s.ClientName,
		CancellationReason: s.CancellationReason,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}

	if s.CancelledAt != nil {
		cancelledStr := s.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainSessionList конвертирует список domain моделей в DTO
func FromDomainSessionList(sessions []*domain.Session) *SessionListResponse {
	if sessions == nil {
		return &SessionListResponse{
			Sessions: []SessionResponse{},
		}
	}

	resp := &SessionListResponse{
		Sessions: make([]SessionResponse, len(sessions)),
	}

	for i, s := range sessions {
		if sessionResp := FromDomainSession(s); sessionResp != nil {
			resp.Sessions[i] = *sessionResp
		}
	}

	return resp
}

// ToDomainSessionStatus конвертирует строку в domain.SessionStatus с валидацией
func ToDomainSessionStatus(status string) (domain.SessionStatus, error) {
	s := domain.SessionStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

package models

import (
	"time"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
)

// PackResponse ответ с данными пакета занятий
type PackResponse struct {
	ID                int64     `json:"id"`
	ClientID          int64     `json:"clientId"`
	PackDefinitionID  int64     `json:"packDefinitionId"`
	TotalSessions     int       `json:"totalSessions"`
	RemainingSessions int       `json:"remainingSessions"`
	IsActive          bool      `json:"isActive"`
	PurchaseState     string    `json:"purchaseState"`
	PurchaseDate      time.Time `json:"purchaseDate"`
	ExpiresAt         time.Time `json:"expiresAt"`

	// Пригодность пакета для бронирования на момент запроса
	// Пустая строка - пакет пригоден; иначе конкретная причина
	// (inactive, expired, exhausted, wrong_purchase_state)
	IneligibleReason string `json:"ineligibleReason,omitempty"`
}

// PackListResponse ответ со списком пакетов
type PackListResponse struct {
	Packs []PackResponse `json:"packs"`
}

// FromDomainPack конвертирует domain модель в DTO
// Пригодность вычисляется на момент now
func FromDomainPack(p *domain.ClientPack, now time.Time) *PackResponse {
	if p == nil {
		return nil
	}

	return &PackResponse{
		ID:                p.ID,
		ClientID:          p.ClientID,
		PackDefinitionID:  p.PackDefinitionID,
		TotalSessions:     p.TotalSessions,
		RemainingSessions: p.RemainingSessions,
		IsActive:          p.IsActive,
		PurchaseState:     string(p.PurchaseState),
		PurchaseDate:      p.PurchaseDate,
		ExpiresAt:         p.ExpiresAt,
		IneligibleReason:  string(p.CheckEligible(now)),
	}
}

// FromDomainPackList конвертирует список domain моделей в DTO
func FromDomainPackList(packs []*domain.ClientPack, now time.Time) *PackListResponse {
	resp := &PackListResponse{
		Packs: make([]PackResponse, 0, len(packs)),
	}

	for _, p := range packs {
		if packResp := FromDomainPack(p, now); packResp != nil {
			resp.Packs = append(resp.Packs, *packResp)
		}
	}

	return resp
}

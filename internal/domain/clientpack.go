package domain

import "time"

// PurchaseState represents the payment state of a purchased pack
type PurchaseState string

const (
	PurchasePending   PurchaseState = "pending"
	PurchaseCompleted PurchaseState = "completed"
	PurchaseCancelled PurchaseState = "cancelled"
)

// ClientPack represents a purchased session package (the entitlement
// a booking is committed against)
// Создаётся платёжным коллаборатором при подтверждении оплаты;
// этот сервис только читает и изменяет remaining_sessions / is_active
type ClientPack struct {
	ID                int64
	ClientID          int64
	PackDefinitionID  int64
	TotalSessions     int // Количество занятий в пакете на момент покупки
	RemainingSessions int // Инвариант: 0 <= RemainingSessions <= TotalSessions
	IsActive          bool
	PurchaseState     PurchaseState
	PurchaseDate      time.Time
	ExpiresAt         time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired returns true if the pack expired at the given moment
func (p *ClientPack) IsExpired(now time.Time) bool {
	return !p.ExpiresAt.After(now)
}

// IsExhausted returns true if the pack has no sessions left
func (p *ClientPack) IsExhausted() bool {
	return p.RemainingSessions <= 0
}

// IsPaid returns true if the purchase reached the completed state
func (p *ClientPack) IsPaid() bool {
	return p.PurchaseState == PurchaseCompleted
}

// EligibilityReason причина непригодности пакета для бронирования
// Возвращается конкретная причина - UI различает "выберите другой слот"
// и "купите новый пакет"
type EligibilityReason string

const (
	ReasonEligible   EligibilityReason = ""
	ReasonInactive   EligibilityReason = "inactive"
	ReasonExpired    EligibilityReason = "expired"
	ReasonExhausted  EligibilityReason = "exhausted"
	ReasonWrongState EligibilityReason = "wrong_purchase_state"
)

// CheckEligible проверяет пригодность пакета для бронирования на момент now
// Порядок проверок фиксирован: состояние покупки, активность, срок, остаток
func (p *ClientPack) CheckEligible(now time.Time) EligibilityReason {
	if !p.IsPaid() {
		return ReasonWrongState
	}
	if !p.IsActive {
		return ReasonInactive
	}
	if p.IsExpired(now) {
		return ReasonExpired
	}
	if p.IsExhausted() {
		return ReasonExhausted
	}
	return ReasonEligible
}

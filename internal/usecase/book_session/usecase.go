package book_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	packRepo "github.com/younesAM01/StayFit-BookingService/internal/infra/storage/clientpack"
	sessionRepo "github.com/younesAM01/StayFit-BookingService/internal/infra/storage/session"
	rosterClient "github.com/younesAM01/StayFit-BookingService/internal/integrations/rosterservice"
)

// UseCase use case бронирования сессии с тренером
// Оркестрирует клиентский сценарий: тренер -> слот -> пригодность пакета -> коммит
type UseCase struct {
	sessionRepo  SessionRepository
	packRepo     ClientPackRepository
	rosterClient RosterServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	packRepo ClientPackRepository,
	rosterClient RosterServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		packRepo:     packRepo,
		rosterClient: rosterClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования
// Проверка занятости слота, проверка пригодности пакета, списание занятия
// и создание сессии выполняются в одной сериализуемой транзакции:
// при сбое записи после списания откат транзакции возвращает занятие -
// это компенсирующее действие, сохраняющее инвариант счётчика.
// Из двух конкурирующих бронирований одного слота выигрывает ровно одно,
// проигравшее получает ErrSlotTaken
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSession: coach=%d, client=%d, date=%s, hour=%s, free=%v",
		req.CoachID, req.ClientID, req.Date.Format(domain.DateFormat), req.Hour, req.IsFree)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем тренера и проверяем активность
	coach, err := uc.rosterClient.GetCoach(ctx, req.CoachID)
	if err != nil {
		if errors.Is(err, rosterClient.ErrCoachNotFound) {
			uc.logger.Warn("BookSession: coach id=%d not found", req.CoachID)
			return nil, ErrCoachNotFound
		}
		uc.logger.Error("BookSession: failed to get coach id=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
	}

	if !coach.Active {
		uc.logger.Warn("BookSession: coach id=%d is inactive", req.CoachID)
		return nil, ErrCoachInactive
	}

	// 4. Получаем клиента
	client, err := uc.rosterClient.GetClient(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, rosterClient.ErrClientNotFound) {
			uc.logger.Warn("BookSession: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("BookSession: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 5. Проверяем дату и отсечку по времени
	if err := validateSlotTime(req.Date, req.Hour, now); err != nil {
		uc.logger.Warn("BookSession: slot time validation failed: %v", err)
		return nil, err
	}

	var result *domain.Session

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Проверяем пригодность пакета (строка блокируется FOR UPDATE)
		if req.ClientPackID != nil {
			pack, err := uc.packRepo.GetByID(txCtx, *req.ClientPackID)
			if err != nil {
				if errors.Is(err, packRepo.ErrPackNotFound) {
					uc.logger.Warn("BookSession: pack id=%d not found", *req.ClientPackID)
					return ErrPackNotFound
				}
				uc.logger.Error("BookSession: failed to get pack id=%d: %v", *req.ClientPackID, err)
				return fmt.Errorf("%w: failed to get pack: %v", ErrInternal, err)
			}

			if pack.ClientID != req.ClientID {
				uc.logger.Warn("BookSession: pack id=%d belongs to client=%d, not client=%d",
					pack.ID, pack.ClientID, req.ClientID)
				return ErrPackNotOwned
			}

			// Бесплатная сессия пакет не расходует - пригодность не проверяем
			if !req.IsFree {
				if err := packEligibilityError(pack.CheckEligible(now)); err != nil {
					uc.logger.Warn("BookSession: pack id=%d not eligible: %v", pack.ID, err)
					return err
				}
			}
		}

		// 6.2. Проверяем занятость слота по сессиям недели (FOR UPDATE)
		weekStart := domain.WeekStart(req.Date)
		existing, err := uc.sessionRepo.ListByCoachAndWeek(txCtx, req.CoachID, weekStart)
		if err != nil {
			uc.logger.Error("BookSession: failed to list sessions: %v", err)
			return fmt.Errorf("%w: failed to list sessions: %v", ErrInternal, err)
		}

		if slotOccupied(existing, req.Date, req.Hour) {
			uc.logger.Warn("BookSession: slot %s taken for coach=%d",
				domain.SlotKey(req.Date, req.Hour.Int()), req.CoachID)
			return ErrSlotTaken
		}

		// 6.3. Списываем занятие с пакета (атомарный условный декремент)
		if !req.IsFree {
			if err := uc.packRepo.Consume(txCtx, *req.ClientPackID); err != nil {
				if errors.Is(err, packRepo.ErrNoSessionsLeft) {
					// Гонка за последнее занятие проиграна, несмотря на
					// прошедшую проверку пригодности
					uc.logger.Warn("BookSession: pack id=%d exhausted concurrently", *req.ClientPackID)
					return ErrPackExhausted
				}
				uc.logger.Error("BookSession: failed to consume pack id=%d: %v", *req.ClientPackID, err)
				return fmt.Errorf("%w: failed to consume pack: %v", ErrInternal, err)
			}
		}

		// 6.4. Создаем сессию с денормализацией имён
		session := &domain.Session{
			CoachID:         req.CoachID,
			ClientID:        req.ClientID,
			ClientPackID:    req.ClientPackID,
			SessionDate:     req.Date,
			HourOfDay:       req.Hour,
			DurationMinutes: domain.DefaultSessionDurationMinutes,
			Location:        req.Location,
			Status:          domain.StatusScheduled,
			IsFree:          req.IsFree,
			CoachName:       &coach.DisplayName,
			ClientName:      &client.DisplayName,
		}

		created, err := uc.sessionRepo.Create(txCtx, session)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSlotTaken) {
				// Уникальный индекс поймал гонку, прошедшую прикладную проверку.
				// Откат транзакции вернёт списанное занятие
				uc.logger.Warn("BookSession: unique index rejected slot %s for coach=%d",
					domain.SlotKey(req.Date, req.Hour.Int()), req.CoachID)
				return ErrSlotTaken
			}
			uc.logger.Error("BookSession: failed to create session: %v", err)
			return fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSession: created session id=%d for coach=%d, client=%d",
		result.ID, result.CoachID, result.ClientID)

	return &Response{
		ID:              result.ID,
		CoachID:         result.CoachID,
		ClientID:        result.ClientID,
		ClientPackID:    result.ClientPackID,
		SessionDate:     result.SessionDate,
		Hour:            result.HourOfDay,
		DurationMinutes: result.DurationMinutes,
		Location:        result.Location,
		Status:          string(result.Status),
		IsFree:          result.IsFree,
		CoachName:       result.CoachName,
		ClientName:      result.ClientName,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

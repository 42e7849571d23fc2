package reschedule_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	sessionRepo "github.com/younesAM01/StayFit-BookingService/internal/infra/storage/session"
)

// UseCase use case переноса сессии на другой слот
type UseCase struct {
	sessionRepo  SessionRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет перенос сессии
// Чтение сессии, проверка занятости нового слота и запись выполняются
// в одной сериализуемой транзакции - занятия с пакета перенос не трогает,
// списанное при бронировании остаётся списанным
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleSession: session=%d, newDate=%s, newHour=%s",
		req.SessionID, req.NewDate.Format(domain.DateFormat), req.NewHour)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем новый слот по времени
	if err := validateSlotTime(req.NewDate, req.NewHour, now); err != nil {
		uc.logger.Warn("RescheduleSession: slot time validation failed: %v", err)
		return nil, err
	}

	var result *domain.Session

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем сессию (строка блокируется FOR UPDATE)
		session, err := uc.sessionRepo.GetByID(txCtx, req.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				uc.logger.Warn("RescheduleSession: session id=%d not found", req.SessionID)
				return ErrSessionNotFound
			}
			uc.logger.Error("RescheduleSession: failed to get session id=%d: %v", req.SessionID, err)
			return fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
		}

		// 4.2. Проверяем статус
		if !session.CanBeRescheduled() {
			uc.logger.Warn("RescheduleSession: session id=%d in status %q cannot be rescheduled",
				session.ID, session.Status)
			return ErrCannotReschedule
		}

		// 4.3. Проверяем занятость нового слота (FOR UPDATE)
		weekStart := domain.WeekStart(req.NewDate)
		existing, err := uc.sessionRepo.ListByCoachAndWeek(txCtx, session.CoachID, weekStart)
		if err != nil {
			uc.logger.Error("RescheduleSession: failed to list sessions: %v", err)
			return fmt.Errorf("%w: failed to list sessions: %v", ErrInternal, err)
		}

		if slotOccupied(existing, req.NewDate, req.NewHour, session.ID) {
			uc.logger.Warn("RescheduleSession: slot %s taken for coach=%d",
				domain.SlotKey(req.NewDate, req.NewHour.Int()), session.CoachID)
			return ErrSlotTaken
		}

		// 4.4. Переносим сессию
		if err := uc.sessionRepo.Reschedule(txCtx, session.ID, req.NewDate, req.NewHour.Int()); err != nil {
			if errors.Is(err, sessionRepo.ErrSlotTaken) {
				uc.logger.Warn("RescheduleSession: unique index rejected slot %s for coach=%d",
					domain.SlotKey(req.NewDate, req.NewHour.Int()), session.CoachID)
				return ErrSlotTaken
			}
			uc.logger.Error("RescheduleSession: failed to reschedule session id=%d: %v", session.ID, err)
			return fmt.Errorf("%w: failed to reschedule session: %v", ErrInternal, err)
		}

		session.SessionDate = req.NewDate
		session.HourOfDay = req.NewHour
		result = session
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleSession: session id=%d moved to %s",
		result.ID, domain.SlotKey(result.SessionDate, result.HourOfDay.Int()))

	return &Response{
		ID:          result.ID,
		CoachID:     result.CoachID,
		ClientID:    result.ClientID,
		SessionDate: result.SessionDate,
		Hour:        result.HourOfDay,
		Status:      string(result.Status),
	}, nil
}

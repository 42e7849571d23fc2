package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	sessionRepo "github.com/younesAM01/StayFit-BookingService/internal/infra/storage/session"
	"github.com/younesAM01/StayFit-BookingService/internal/service/sessions/models"
)

// Service сервис жизненного цикла сессий: чтение, завершение, отмена, удаление
// Создание сессий - отдельный usecase book_session
type Service struct {
	sessionRepo SessionRepository
	packRepo    ClientPackRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	sessionRepo SessionRepository,
	packRepo ClientPackRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		packRepo:    packRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает сессию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SessionResponse, error) {
	s.logger.Info("GetByID: fetching session id=%d", id)

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("GetByID: session id=%d not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetByID: repository error for session id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSession(session), nil
}

// GetClientSessions получает историю сессий клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientSessions(ctx context.Context, req *models.GetClientSessionsRequest) (*models.SessionListResponse, error) {
	s.logger.Info("GetClientSessions: fetching sessions for client=%d, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.SessionStatus
	if req.Status != nil {
		status, err := models.ToDomainSessionStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientSessions: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	sessions, err := s.sessionRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientSessions: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientSessions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientSessions: fetched %d sessions for client=%d", len(sessions), req.ClientID)
	return models.FromDomainSessionList(sessions), nil
}

// GetCoachSessions получает календарь тренера с гибкой фильтрацией
// по периоду, статусу и включению отменённых сессий
func (s *Service) GetCoachSessions(ctx context.Context, req *models.GetCoachSessionsRequest) (*models.SessionListResponse, error) {
	s.logger.Info("GetCoachSessions: fetching sessions for coach=%d", req.CoachID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCoachSessions: invalid filter for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	sessions, err := s.sessionRepo.GetByCoachWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCoachSessions: repository error for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: GetCoachSessions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCoachSessions: fetched %d sessions for coach=%d", len(sessions), req.CoachID)
	return models.FromDomainSessionList(sessions), nil
}

// Complete завершает сессию (scheduled -> completed)
// Терминальный переход без побочных эффектов на пакет:
// занятие было списано при бронировании
func (s *Service) Complete(ctx context.Context, sessionID int64) error {
	s.logger.Info("Complete: completing session id=%d", sessionID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		session, err := s.sessionRepo.GetByID(txCtx, sessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
		}

		if !session.CanBeCompleted() {
			s.logger.Warn("Complete: session id=%d cannot be completed, status=%s", sessionID, session.Status)
			return ErrCannotComplete
		}

		if err := s.sessionRepo.UpdateStatus(txCtx, sessionID, domain.StatusCompleted); err != nil {
			return fmt.Errorf("%w: Complete - update status: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Complete: session id=%d completed", sessionID)
	return nil
}

// Cancel отменяет сессию (pending/scheduled -> cancelled)
// Слот освобождается (отменённая сессия не учитывается при расчёте доступности),
// а списанное занятие возвращается в пакет. Отмена и возврат выполняются
// в одной транзакции - счётчик занятий не может разойтись со статусом сессии
func (s *Service) Cancel(ctx context.Context, sessionID int64, req *models.CancelSessionRequest) error {
	s.logger.Info("Cancel: cancelling session id=%d by user=%d", sessionID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		session, err := s.sessionRepo.GetByID(txCtx, sessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !session.CanBeCancelled() {
			s.logger.Warn("Cancel: session id=%d cannot be cancelled, status=%s", sessionID, session.Status)
			return ErrCannotCancel
		}

		if err := s.sessionRepo.Cancel(txCtx, sessionID, req.CancellationReason); err != nil {
			return fmt.Errorf("%w: Cancel - cancel session: %v", ErrInternal, err)
		}

		// Возвращаем занятие в пакет, если оно было списано
		if session.HasConsumedCredit() {
			if err := s.packRepo.Restore(txCtx, *session.ClientPackID); err != nil {
				return fmt.Errorf("%w: Cancel - restore pack credit: %v", ErrInternal, err)
			}
			s.logger.Info("Cancel: restored credit to pack id=%d for session id=%d",
				*session.ClientPackID, sessionID)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Cancel: session id=%d cancelled", sessionID)
	return nil
}

// Delete физически удаляет сессию (административная коррекция, минуя state machine)
// Если удаляемая сессия держала списанное занятие, оно возвращается в пакет
// в той же транзакции
func (s *Service) Delete(ctx context.Context, sessionID int64) error {
	s.logger.Info("Delete: deleting session id=%d", sessionID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		session, err := s.sessionRepo.GetByID(txCtx, sessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		// Компенсация перед удалением
		if session.HasConsumedCredit() {
			if err := s.packRepo.Restore(txCtx, *session.ClientPackID); err != nil {
				return fmt.Errorf("%w: Delete - restore pack credit: %v", ErrInternal, err)
			}
			s.logger.Info("Delete: restored credit to pack id=%d for session id=%d",
				*session.ClientPackID, sessionID)
		}

		if err := s.sessionRepo.Delete(txCtx, sessionID); err != nil {
			return fmt.Errorf("%w: Delete - delete session: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Delete: session id=%d deleted", sessionID)
	return nil
}

package get_week_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	rosterClient "github.com/younesAM01/StayFit-BookingService/internal/integrations/rosterservice"
)

// UseCase use case расчёта недельной сетки доступности тренера
// Результат совещательный: показывается клиенту при выборе слота,
// авторитетная проверка занятости выполняется в момент бронирования
type UseCase struct {
	sessionRepo  SessionRepository
	rosterClient RosterServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	rosterClient RosterServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		rosterClient: rosterClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения недельной сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetWeekAvailability: coach=%d, weekAnchor=%s",
		req.CoachID, req.WeekAnchor.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем тренера и проверяем активность
	coach, err := uc.rosterClient.GetCoach(ctx, req.CoachID)
	if err != nil {
		if errors.Is(err, rosterClient.ErrCoachNotFound) {
			uc.logger.Warn("GetWeekAvailability: coach id=%d not found", req.CoachID)
			return nil, ErrCoachNotFound
		}
		uc.logger.Error("GetWeekAvailability: failed to get coach id=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
	}

	if !coach.Active {
		uc.logger.Warn("GetWeekAvailability: coach id=%d is inactive", req.CoachID)
		return nil, ErrCoachInactive
	}

	// 4. Нормализуем якорную дату к понедельнику недели
	weekStart := domain.WeekStart(req.WeekAnchor)

	// 5. Получаем сессии тренера за неделю
	sessions, err := uc.sessionRepo.ListByCoachAndWeek(ctx, req.CoachID, weekStart)
	if err != nil {
		uc.logger.Error("GetWeekAvailability: failed to list sessions: %v", err)
		return nil, fmt.Errorf("%w: failed to list sessions: %v", ErrInternal, err)
	}

	// 6. Вычисляем доступность слотов
	availability := computeWeekAvailability(weekStart, sessions, now)

	uc.logger.Info("GetWeekAvailability: computed grid for coach=%d, week=%s, sessions=%d",
		req.CoachID, weekStart.Format(domain.DateFormat), len(sessions))

	return &Response{
		CoachID:   req.CoachID,
		CoachName: coach.DisplayName,
		WeekStart: weekStart,
		Days:      buildDays(weekStart, availability),
	}, nil
}

package get_week_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/younesAM01/StayFit-BookingService/internal/api/handlers"
	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	getWeekAvailability "github.com/younesAM01/StayFit-BookingService/internal/usecase/get_week_availability"
)

const (
	msgInvalidCoachID = "некорректный ID тренера"
	msgInvalidWeek    = "некорректный параметр week, ожидается YYYY-MM-DD"
	msgCoachNotFound  = "тренер не найден"
	msgCoachInactive  = "тренер неактивен"
)

type Handler struct {
	useCase GetWeekAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches/{coachId}/availability?week=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем coachId из URL
	vars := mux.Vars(r)
	coachIDStr := vars["coachId"]

	coachID, err := strconv.ParseInt(coachIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/availability - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	// Параметр week - любая дата внутри интересующей недели
	// Без параметра показываем текущую неделю
	weekAnchor := time.Now()
	if weekStr := r.URL.Query().Get("week"); weekStr != "" {
		weekAnchor, err = time.Parse(domain.DateFormat, weekStr)
		if err != nil {
			h.logger.Warn("GET /coaches/{id}/availability - Invalid week param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeek)
			return
		}
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getWeekAvailability.Request{
		CoachID:    coachID,
		WeekAnchor: weekAnchor,
	})
	if err != nil {
		switch {
		case errors.Is(err, getWeekAvailability.ErrCoachNotFound):
			h.logger.Warn("GET /coaches/{id}/availability - Coach not found: coach_id=%d", coachID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, getWeekAvailability.ErrCoachInactive):
			h.logger.Warn("GET /coaches/{id}/availability - Coach inactive: coach_id=%d", coachID)
			handlers.RespondBadRequest(w, msgCoachInactive)

		case errors.Is(err, getWeekAvailability.ErrInvalidInput):
			h.logger.Warn("GET /coaches/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCoachID)

		default:
			h.logger.Error("GET /coaches/{id}/availability - Failed to get availability: coach_id=%d, error=%v",
				coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /coaches/{id}/availability - Availability retrieved: coach_id=%d, week_start=%s",
		coachID, response.WeekStart)
	handlers.RespondJSON(w, http.StatusOK, response)
}

package reschedule_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/younesAM01/StayFit-BookingService/internal/api/handlers"
	rescheduleSession "github.com/younesAM01/StayFit-BookingService/internal/usecase/reschedule_session"
	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

const (
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidHourFormat  = "некорректный формат часа, ожидается HH:00, H PM или H"
	msgNotFound           = "сессия не найдена"
	msgCannotReschedule   = "сессия не может быть перенесена"
	msgSlotTaken          = "выбранный слот уже занят"
	msgInvalidSessionDate = "некорректная дата сессии"
	msgInvalidHour        = "час вне рабочей сетки"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
)

type Handler struct {
	useCase RescheduleSessionUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем sessionId из URL
	vars := mux.Vars(r)
	sessionIDStr := vars["sessionId"]

	sessionID, err := strconv.ParseInt(sessionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/reschedule - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req RescheduleSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/reschedule - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, types.ErrInvalidHourFormat), errors.Is(err, types.ErrHourOutOfRange):
			handlers.RespondBadRequest(w, msgInvalidHourFormat)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleSession.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/reschedule - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleSession.ErrCannotReschedule):
			h.logger.Warn("PATCH /sessions/{id}/reschedule - Cannot reschedule: session_id=%d", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgCannotReschedule)

		case errors.Is(err, rescheduleSession.ErrSlotTaken):
			h.logger.Warn("PATCH /sessions/{id}/reschedule - Slot taken: session_id=%d, date=%s, hour=%s",
				sessionID, req.NewDate, req.NewHour)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, rescheduleSession.ErrInvalidDate):
			h.logger.Warn("PATCH /sessions/{id}/reschedule - Invalid date: session_id=%d, date=%s", sessionID, req.NewDate)
			handlers.RespondBadRequest(w, msgInvalidSessionDate)

		case errors.Is(err, rescheduleSession.ErrInvalidHour):
			h.logger.Warn("PATCH /sessions/{id}/reschedule - Invalid hour: session_id=%d, hour=%s", sessionID, req.NewHour)
			handlers.RespondBadRequest(w, msgInvalidHour)

		case errors.Is(err, rescheduleSession.ErrTooLateToBook):
			h.logger.Warn("PATCH /sessions/{id}/reschedule - Too late to book: session_id=%d", sessionID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, rescheduleSession.ErrInvalidInput):
			h.logger.Warn("PATCH /sessions/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /sessions/{id}/reschedule - Failed to reschedule: session_id=%d, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /sessions/{id}/reschedule - Session rescheduled: session_id=%d, date=%s, hour=%s",
		sessionID, response.SessionDate, response.Hour)
	handlers.RespondJSON(w, http.StatusOK, response)
}

package book_session

import (
	"errors"
	"net/http"

	"github.com/younesAM01/StayFit-BookingService/internal/api/handlers"
	bookSession "github.com/younesAM01/StayFit-BookingService/internal/usecase/book_session"
	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidHourFormat  = "некорректный формат часа, ожидается HH:00, H PM или H"
	msgSlotTaken          = "выбранный слот уже занят"
	msgCoachNotFound      = "тренер не найден"
	msgCoachInactive      = "тренер неактивен"
	msgClientNotFound     = "клиент не найден"
	msgPackNotFound       = "пакет занятий не найден"
	msgPackNotOwned       = "пакет принадлежит другому клиенту"
	msgPackInactive       = "пакет занятий неактивен"
	msgPackExpired        = "срок действия пакета истёк"
	msgPackExhausted      = "в пакете не осталось занятий"
	msgPackWrongState     = "покупка пакета не завершена"
	msgInvalidSessionDate = "некорректная дата сессии"
	msgInvalidHour        = "час вне рабочей сетки"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
)

type Handler struct {
	useCase BookSessionUseCase
	logger  Logger
}

func NewHandler(useCase BookSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и часа)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /sessions - Failed to parse request: %v", err)
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
		case errors.Is(err, bookSession.ErrSlotTaken):
			h.logger.Warn("POST /sessions - Slot taken: coach_id=%d, date=%s, hour=%s",
				req.CoachID, req.SessionDate, req.Hour)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, bookSession.ErrCoachNotFound):
			h.logger.Warn("POST /sessions - Coach not found: coach_id=%d", req.CoachID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, bookSession.ErrCoachInactive):
			h.logger.Warn("POST /sessions - Coach inactive: coach_id=%d", req.CoachID)
			handlers.RespondBadRequest(w, msgCoachInactive)

		case errors.Is(err, bookSession.ErrClientNotFound):
			h.logger.Warn("POST /sessions - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, bookSession.ErrPackNotFound):
			h.logger.Warn("POST /sessions - Pack not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgPackNotFound)

		case errors.Is(err, bookSession.ErrPackNotOwned):
			h.logger.Warn("POST /sessions - Pack not owned: client_id=%d", req.ClientID)
			handlers.RespondForbidden(w, msgPackNotOwned)

		case errors.Is(err, bookSession.ErrPackInactive):
			h.logger.Warn("POST /sessions - Pack inactive: client_id=%d", req.ClientID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPackInactive)

		case errors.Is(err, bookSession.ErrPackExpired):
			h.logger.Warn("POST /sessions - Pack expired: client_id=%d", req.ClientID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPackExpired)

		case errors.Is(err, bookSession.ErrPackExhausted):
			h.logger.Warn("POST /sessions - Pack exhausted: client_id=%d", req.ClientID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPackExhausted)

		case errors.Is(err, bookSession.ErrPackWrongState):
			h.logger.Warn("POST /sessions - Pack purchase not completed: client_id=%d", req.ClientID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPackWrongState)

		case errors.Is(err, bookSession.ErrInvalidDate):
			h.logger.Warn("POST /sessions - Invalid session date: coach_id=%d, date=%s", req.CoachID, req.SessionDate)
			handlers.RespondBadRequest(w, msgInvalidSessionDate)

		case errors.Is(err, bookSession.ErrInvalidHour):
			h.logger.Warn("POST /sessions - Invalid hour: coach_id=%d, hour=%s", req.CoachID, req.Hour)
			handlers.RespondBadRequest(w, msgInvalidHour)

		case errors.Is(err, bookSession.ErrTooLateToBook):
			h.logger.Warn("POST /sessions - Too late to book: coach_id=%d, date=%s, hour=%s",
				req.CoachID, req.SessionDate, req.Hour)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, bookSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /sessions - Failed to book session: coach_id=%d, client_id=%d, error=%v",
				req.CoachID, req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /sessions - Session booked successfully: session_id=%d, coach_id=%d, client_id=%d",
		result.ID, req.CoachID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

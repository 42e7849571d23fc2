package get_pack

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/younesAM01/StayFit-BookingService/internal/api/handlers"
	"github.com/younesAM01/StayFit-BookingService/internal/service/packs"
)

const (
	msgInvalidPackID = "некорректный ID пакета"
	msgNotFound      = "пакет не найден"
)

type Handler struct {
	service PackService
	logger  Logger
}

func NewHandler(service PackService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/packs/{packId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем packId из URL
	vars := mux.Vars(r)
	packIDStr := vars["packId"]

	packID, err := strconv.ParseInt(packIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /packs/{id} - Invalid pack ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackID)
		return
	}

	pack, err := h.service.GetByID(r.Context(), packID)
	if err != nil {
		switch {
		case errors.Is(err, packs.ErrPackNotFound):
			h.logger.Warn("GET /packs/{id} - Pack not found: pack_id=%d", packID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /packs/{id} - Failed to get pack: pack_id=%d, error=%v", packID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /packs/{id} - Pack retrieved: pack_id=%d", packID)
	handlers.RespondJSON(w, http.StatusOK, pack)
}

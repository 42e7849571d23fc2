package get_client_packs

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/younesAM01/StayFit-BookingService/internal/api/handlers"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
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

// Handle GET /api/v1/clients/{clientId}/packs?onlyActive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем clientId из URL
	vars := mux.Vars(r)
	clientIDStr := vars["clientId"]

	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/packs - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	onlyActive := r.URL.Query().Get("onlyActive") == "true"

	result, err := h.service.GetClientPacks(r.Context(), clientID, onlyActive)
	if err != nil {
		h.logger.Error("GET /clients/{id}/packs - Failed to get packs: client_id=%d, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/{id}/packs - Packs retrieved: client_id=%d, count=%d",
		clientID, len(result.Packs))
	handlers.RespondJSON(w, http.StatusOK, result)
}

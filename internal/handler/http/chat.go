package http

import (
	"net/http"

	"github.com/MKhiriev/visa-assistant/models"
)

// chat forwards one prompt to the assistant and returns the stored exchange.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := h.services.ChatService.TalkToAI(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.ChatResponse{
		Result: models.ChatResult{Code: http.StatusOK, Log: entry},
	})
}

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/visa-assistant/internal/service"
	"github.com/MKhiriev/visa-assistant/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// health answers 200 while the database is reachable and 503 otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.CheckHealth(r.Context()); err != nil {
		if !errors.Is(err, service.ErrServiceUnhealthy) {
			err = fmt.Errorf("%w: %w", service.ErrServiceUnhealthy, err)
		}
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.HealthResponse{Code: http.StatusOK, Status: "ok"})
}

package handler

import (
	"github.com/MKhiriev/visa-assistant/internal/config"
	"github.com/MKhiriev/visa-assistant/internal/filestore"
	"github.com/MKhiriev/visa-assistant/internal/handler/http"
	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. files is handed
// to the HTTP handler so that a local disk can be published under /storage.
func NewHandlers(services *service.Services, files filestore.FileStorage, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, files, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

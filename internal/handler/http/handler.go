package http

import (
	"time"

	"github.com/MKhiriev/visa-assistant/internal/config"
	"github.com/MKhiriev/visa-assistant/internal/filestore"
	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/internal/service"
)

type Handler struct {
	services *service.Services

	// publicDisk serves /storage/* when images are kept on the local disk.
	publicDisk filestore.PublicDisk

	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, files filestore.FileStorage, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		allowedOrigins: cfg.AllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
	if disk, ok := files.(filestore.PublicDisk); ok {
		h.publicDisk = disk
	}

	logger.Info().Bool("public_disk", h.publicDisk != nil).Msg("http handler created")
	return h
}

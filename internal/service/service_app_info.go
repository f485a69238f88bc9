package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/visa-assistant/internal/config"
	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/models"
)

// buildInfoNotAvailable is the placeholder printed for build fields that were
// not injected by the linker.
const buildInfoNotAvailable = "N/A"

type appInfoService struct {
	appVersion string
	db         Pinger

	logger *logger.Logger
}

// NewAppInfoService returns the service answering version and health probes.
// A linker-injected build version takes precedence over cfg.Version.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, db Pinger, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if v := buildInfo.BuildVersion(); v != "" && v != buildInfoNotAvailable {
		version = v
	}

	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		db:         db,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// CheckHealth pings the database. A service without a database dependency
// is always healthy.
func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if s.db == nil {
		return nil
	}

	if err := s.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrServiceUnhealthy, err)
	}
	return nil
}

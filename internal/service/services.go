package service

import (
	"github.com/MKhiriev/visa-assistant/internal/adapter"
	"github.com/MKhiriev/visa-assistant/internal/config"
	"github.com/MKhiriev/visa-assistant/internal/filestore"
	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/internal/store"
	"github.com/MKhiriev/visa-assistant/internal/validators"
	"github.com/MKhiriev/visa-assistant/models"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	ChatService    ChatService
	AppInfoService AppInfoService
}

// Dependencies groups the infrastructure the services are built on.
type Dependencies struct {
	Storages   *store.Storages
	Files      filestore.FileStorage
	Completion adapter.CompletionClient
	DB         Pinger
	BuildInfo  models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, deps.BuildInfo, deps.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthService(
			deps.Storages.UserRepository,
			deps.Storages.AccessTokenRepository,
			validator,
			cfg.App,
			logger,
		),
		ProfileService: NewProfileService(deps.Storages.UserRepository, deps.Files, validator, logger),
		ChatService: NewChatService(
			deps.Storages.UserRepository,
			deps.Storages.ChatLogRepository,
			deps.Completion,
			validator,
			logger,
		),
		AppInfoService: appInfoService,
	}, nil
}

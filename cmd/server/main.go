package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/visa-assistant/internal/adapter"
	"github.com/MKhiriev/visa-assistant/internal/config"
	"github.com/MKhiriev/visa-assistant/internal/filestore"
	"github.com/MKhiriev/visa-assistant/internal/handler"
	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/internal/server"
	"github.com/MKhiriev/visa-assistant/internal/service"
	"github.com/MKhiriev/visa-assistant/internal/store"
	"github.com/MKhiriev/visa-assistant/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("visa-assistant-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	files, err := filestore.New(ctx, cfg.Storage.Files, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating file storage")
	}

	completion, err := adapter.NewCompletionClient(cfg.AI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating completion client")
	}

	services, err := service.NewServices(service.Dependencies{
		Storages:   store.NewStorages(db, log),
		Files:      files,
		Completion: completion,
		DB:         db,
		BuildInfo:  buildInfo,
	}, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, files, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

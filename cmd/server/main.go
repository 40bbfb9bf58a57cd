package main

import (
	"context"

	"github.com/MKhiriev/bootcamp-api/internal/config"
	"github.com/MKhiriev/bootcamp-api/internal/handler"
	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/internal/server"
	"github.com/MKhiriev/bootcamp-api/internal/service"
	"github.com/MKhiriev/bootcamp-api/internal/store"
	"github.com/MKhiriev/bootcamp-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("bootcamp-api")
	logBuildInfo(log, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Dur("token_duration", cfg.App.TokenDuration).
		Int("password_hash_cost", cfg.App.PasswordHashCost).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func logBuildInfo(log *logger.Logger, info models.AppBuildInfo) {
	log.Info().
		Str("build_version", orNA(info.BuildVersion())).
		Str("build_date", orNA(info.BuildDate())).
		Str("build_commit", orNA(info.BuildCommit())).
		Msg("starting bootcamp-api")
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

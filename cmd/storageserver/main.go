package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jenca-cloud/authentication/internal/config"
	"github.com/jenca-cloud/authentication/internal/handler/storage"
	"github.com/jenca-cloud/authentication/internal/logger"
	"github.com/jenca-cloud/authentication/internal/server"
	"github.com/jenca-cloud/authentication/internal/store"
	"github.com/jenca-cloud/authentication/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("storage-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Storage.DSN == "" {
		log.Fatal().Err(errors.New("database URI must not be empty")).Msg("error validating configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB, db.Dialect()); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	users := store.NewUserRepository(db, log)
	handlers := storage.NewHandler(users, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

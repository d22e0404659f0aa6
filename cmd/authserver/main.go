package main

import (
	"errors"
	"fmt"

	"github.com/jenca-cloud/authentication/internal/config"
	handler "github.com/jenca-cloud/authentication/internal/handler/http"
	"github.com/jenca-cloud/authentication/internal/logger"
	"github.com/jenca-cloud/authentication/internal/password"
	"github.com/jenca-cloud/authentication/internal/server"
	"github.com/jenca-cloud/authentication/internal/service"
	"github.com/jenca-cloud/authentication/internal/session"
	"github.com/jenca-cloud/authentication/internal/store"
	"github.com/jenca-cloud/authentication/internal/token"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Storage.URL == "" {
		log.Fatal().Err(errors.New("storage URL must not be empty")).Msg("error validating configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	users, err := store.NewHTTPUserStore(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage client")
	}

	auth := service.NewAuthService(users, password.NewHasher(0), log)
	sessions := session.NewManager(users, token.NewDeriver(cfg.App.SecretKey), cfg.App, log)

	handlers := handler.NewHandler(auth, sessions, log)

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

package main

import (
	"context"
	"fmt"

	"github.com/mpolacek/ufo-sightings/internal/config"
	handler "github.com/mpolacek/ufo-sightings/internal/handler/http"
	"github.com/mpolacek/ufo-sightings/internal/logger"
	"github.com/mpolacek/ufo-sightings/internal/server"
	"github.com/mpolacek/ufo-sightings/internal/service"
	"github.com/mpolacek/ufo-sightings/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ufo-sightings-server")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	dsn, err := cfg.Storage.DB.DSN()
	if err != nil {
		log.Fatal().Err(err).Msg("error assembling database DSN")
	}

	// A dead database is fatal: the process must not come up without its store.
	db, err := store.NewConnectPostgres(context.Background(), dsn, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}()

	repos := store.NewRepositories(db, log)
	services := service.NewServices(repos, log)
	handlers := handler.NewHandler(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
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

package main

import (
	"context"
	"fmt"

	"github.com/minhtran241/bookmarks-api/internal/config"
	myHTTP "github.com/minhtran241/bookmarks-api/internal/handler/http"
	"github.com/minhtran241/bookmarks-api/internal/logger"
	"github.com/minhtran241/bookmarks-api/internal/server"
	"github.com/minhtran241/bookmarks-api/internal/service"
	"github.com/minhtran241/bookmarks-api/internal/store"
	"github.com/minhtran241/bookmarks-api/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bookmarks-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	// the sqlite backend is provisioned out of band; the embedded
	// migrations target PostgreSQL
	if cfg.Storage.DB.Driver != "sqlite3" {
		if err = migrations.Migrate(db.DB); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, *cfg, log)
	handler := myHTTP.NewHandler(services, cfg.App.Version, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-starwars-catalog/internal/admin"
	"github.com/MKhiriev/go-starwars-catalog/internal/config"
	"github.com/MKhiriev/go-starwars-catalog/internal/handler"
	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/server"
	"github.com/MKhiriev/go-starwars-catalog/internal/service"
	"github.com/MKhiriev/go-starwars-catalog/internal/store"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("starwars-catalog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, log)

	registry, err := admin.NewCatalogRegistry(services)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating admin panel")
	}

	handlers, err := handler.NewHandlers(services, registry, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, storages.DB, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

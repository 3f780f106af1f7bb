// Command seeder imports people and planets from a SWAPI-compatible API
// into the catalog database.
//
// It accepts every flag of the server configuration plus:
//
//	-limit N     import at most N records per entity (0 imports everything)
//	-only NAME   import only "people" or only "planets"
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-starwars-catalog/internal/adapter"
	"github.com/MKhiriev/go-starwars-catalog/internal/config"
	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/service"
	"github.com/MKhiriev/go-starwars-catalog/internal/store"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

const (
	onlyPeople  = "people"
	onlyPlanets = "planets"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println("Seeder", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("starwars-catalog-seeder")

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	limit := fs.Int("limit", 0, "maximum number of records per entity, 0 for all")
	only := fs.String("only", "", `import only "people" or "planets"`)

	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if *only != "" && *only != onlyPeople && *only != onlyPlanets {
		log.Fatal().Str("only", *only).Msg(`-only must be "people" or "planets"`)
	}
	if *limit < 0 {
		log.Fatal().Int("limit", *limit).Msg("-limit must not be negative")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = run(ctx, cfg, *limit, *only, log); err != nil {
		log.Err(err).Msg("seeding ended with error")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, limit int, only string, log *logger.Logger) error {
	swapi, err := adapter.NewSWAPIAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating SWAPI adapter: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	seeder, err := service.NewSeedService(swapi, storages, log)
	if err != nil {
		return err
	}

	if only != onlyPlanets {
		n, err := seeder.SeedPeople(ctx, limit)
		log.Info().Int("stored", n).Msg("people seeded")
		if err != nil {
			return err
		}
	}
	if only != onlyPeople {
		n, err := seeder.SeedPlanets(ctx, limit)
		log.Info().Int("stored", n).Msg("planets seeded")
		if err != nil {
			return err
		}
	}

	return nil
}

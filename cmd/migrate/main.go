package main

import (
	"errors"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"github.com/bizledger/bizledger-be/internal/shared/config"
	"github.com/bizledger/bizledger-be/internal/shared/logger"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.Env)

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	m, err := migrate.New("file://migrations/accounting", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise migrations")
	}
	defer m.Close()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	default:
		log.Fatal().Str("direction", direction).Msg("usage: migrate [up|down]")
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("database is up to date")
			return
		}
		log.Fatal().Err(err).Str("direction", direction).Msg("migration failed")
	}
	log.Info().Str("direction", direction).Msg("migration applied")
}

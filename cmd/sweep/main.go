// Command sweep deletes expired pending reservations once and exits. It is
// meant to run from cron as a backstop for the on-demand sweep endpoint.
package main

import (
	"context"

	"inn/config"
	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/internal/domains/reservation/repository"
	"inn/shared/logger"
	"inn/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)
	repo := repository.New(db, otel.New(cfg))

	deleted, err := repo.DeleteExpired(context.Background(), timezone.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to sweep expired reservations")
	}

	log.Info().Int("deleted", deleted).Msg("expired reservations swept")
}

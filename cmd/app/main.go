package main

import (
	"beautyhub/config"
	"beautyhub/di"
	"beautyhub/helper"
	"beautyhub/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title BeautyHub API
// @version 1.0
// @description Multi-tenant booking for salons, barbershops and spas.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}

package main

import (
	"context"

	"pgms/config"
	"pgms/di"
	"pgms/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title PGMS API
// @version 1.0
// @description Multi-tenant paying guest and hostel management backend.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	logger.InitLogger(config.Get())

	service := di.InitializeService()
	defer service.Close()

	if err := service.Bootstrap(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap service")
	}

	service.HTTP.Serve()
}

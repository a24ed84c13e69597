// Package main is the entry point for the compression-service application.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/compression-service/config"
	"github.com/guttosm/compression-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port, cleanup)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

// Package main is the entry point for the mapsim HTTP service.
//
// @title           Modified Atmosphere Packaging Simulator API
// @version         1.0.0
// @description     Simulates O2, CO2 and ethylene in the headspace of a perforated produce package,
// @description     with an optional ethylene scavenger sachet.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/mapsim
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <JWT>". Accepted when a JWT secret is configured.
//
// @tag.name        Simulation
// @tag.description Run the package atmosphere model
//
// @tag.name        Presets
// @tag.description Named, stored simulation inputs
//
// @tag.name        Audit
// @tag.description Stored request and audit log
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/guttosm/mapsim/docs" // swagger docs

	"github.com/guttosm/mapsim/config"
	"github.com/guttosm/mapsim/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := server.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := application.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("Failed to release resources")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/pointledger/internal/cli"
)

//	@title			Point Ledger API
//	@version		1.0
//	@description	Member reward points with first-in-first-out consumption.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		log.Error().Err(err).Msg("pointledger failed")
		cancel()
		os.Exit(1)
	}
}

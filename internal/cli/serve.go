package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pointledger/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the daily expiry sweep",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			application := app.New(cfg)
			if err := application.Start(ctx); err != nil {
				log.Error().Err(err).Msg("Can't start application")
				_ = application.Close()
				return err
			}

			if err := application.Wait(ctx, cancel); err != nil {
				zap.L().Error("All systems closed with errors", zap.Error(err))
				return err
			}
			zap.L().Info("All systems closed without errors")
			return nil
		},
	}
}

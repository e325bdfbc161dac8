package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/pointledger/internal/app"
	"github.com/GlebRadaev/pointledger/internal/config"
	"github.com/GlebRadaev/pointledger/internal/service/pointservice"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pointledger",
		Short: "Member reward point ledger",
		Long: `pointledger keeps member reward points in an append-only ledger.
Points are spent oldest first, expire after the retention period and can be
rolled back without rewriting history.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSweepCmd(),
		newCheckCmd(),
		newExpireAtCmd(),
		newHashKeyCmd(),
	)
	return root
}

func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(cmd.Flags())
}

// withLedger wires the ledger against the configured stores, runs fn and
// releases every connection afterwards.
func withLedger(cmd *cobra.Command, fn func(ctx context.Context, ledger pointservice.Ledger) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	application := app.New(cfg)
	defer application.Close()

	if err := application.Init(ctx); err != nil {
		return err
	}
	return fn(ctx, application.Services().Ledger)
}

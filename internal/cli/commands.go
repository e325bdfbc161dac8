package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/pointledger/internal/app"
	"github.com/GlebRadaev/pointledger/internal/domain"
	"github.com/GlebRadaev/pointledger/internal/service/pointservice"
	"github.com/GlebRadaev/pointledger/pkg/auth"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			application := app.New(cfg)
			defer application.Close()

			if err := application.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Expire every point group past its expiry date",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLedger(cmd, func(ctx context.Context, ledger pointservice.Ledger) error {
				processed, err := ledger.RunExpirySweep(ctx)
				fmt.Fprintf(cmd.OutOrStdout(), "expired %d groups\n", processed)
				return err
			})
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check MEMBER_ID",
		Short: "Verify that a member's points were consumed oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("member id: %w", err)
			}
			return withLedger(cmd, func(ctx context.Context, ledger pointservice.Ledger) error {
				return reportConsistency(cmd, memberID, ledger.CheckConsistency(ctx, memberID))
			})
		},
	}
}

func reportConsistency(cmd *cobra.Command, memberID int64, err error) error {
	switch {
	case err == nil:
		fmt.Fprintf(cmd.OutOrStdout(), "member %d: consistent\n", memberID)
		return nil
	case errors.Is(err, domain.ErrNotFifoOrder), errors.Is(err, domain.ErrAmountBroken):
		fmt.Fprintf(cmd.OutOrStdout(), "member %d: %v\n", memberID, err)
	}
	return err
}

func newExpireAtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expire-at EVENT_ID TIME",
		Short: "Move the expiry of an EARN event and its group",
		Long: `Rewrites the expiry of an EARN event and of every detail in its group.
TIME is RFC 3339 or a YYYY-MM-DD date. Intended for maintenance and testing.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("event id: %w", err)
			}
			expireAt, err := parseTime(args[1])
			if err != nil {
				return err
			}
			return withLedger(cmd, func(ctx context.Context, ledger pointservice.Ledger) error {
				if err := ledger.OverrideExpiry(ctx, eventID, expireAt); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "event %d now expires at %s\n", eventID, expireAt.Format(time.RFC3339))
				return nil
			})
		},
	}
}

func newHashKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-key KEY",
		Short: "Print the bcrypt hash to use as OPERATOR_KEY_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.KeyHasher{}.HashKey(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("want a positive integer, got %q", raw)
	}
	return id, nil
}

func parseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q, want RFC 3339 or YYYY-MM-DD", raw)
}

package pointservice

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=pointservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/pointledger/internal/domain"
)

// Ledger is the operation set of the point ledger. Caching and metrics
// decorators wrap it; Service is the core implementation.
type Ledger interface {
	Earn(ctx context.Context, memberID, amount int64, reference string) (*domain.Event, error)
	Use(ctx context.Context, memberID, amount int64, reference string) (*domain.Event, error)
	Rollback(ctx context.Context, eventID int64) (*domain.Event, error)
	GetTotal(ctx context.Context, memberID int64) (int64, error)
	GetEvent(ctx context.Context, eventID int64) (*domain.Event, error)
	ListEvents(ctx context.Context, memberID int64, page, size int) (*domain.Page[domain.Event], error)
	RunExpirySweep(ctx context.Context) (int, error)
	CheckConsistency(ctx context.Context, memberID int64) error
	OverrideExpiry(ctx context.Context, eventID int64, expireAt time.Time) error
}

var _ Ledger = (*Service)(nil)

package pointservice

//go:generate mockgen -source=pointservice.go -destination=mock_pointservice.go -package=pointservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pointledger/internal/domain"
	"github.com/GlebRadaev/pointledger/internal/pg"
	"github.com/GlebRadaev/pointledger/pkg/lock"
	"github.com/GlebRadaev/pointledger/pkg/logger"
)

const (
	useLockPrefix = "memberPointUseLock#"
	sweepLockKey  = "pointExpirySweepLock"

	defaultListSize = 20
	maxListSize     = 100
)

type EventRepo interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id int64) (*domain.Event, error)
	FindByMemberID(ctx context.Context, memberID int64, limit, offset int) ([]domain.Event, error)
	CountByMemberID(ctx context.Context, memberID int64) (int64, error)
	OverrideExpiry(ctx context.Context, eventID int64, expireAt time.Time) error
}

type DetailRepo interface {
	Create(ctx context.Context, detail *domain.Detail) (*domain.Detail, error)
	AssignSelfGroup(ctx context.Context, detailID int64) error
	MarkRefundable(ctx context.Context, eventID int64) error
	FindAvailableGroups(ctx context.Context, memberID int64, now time.Time, limit, offset int) ([]domain.GroupRemainder, error)
	FindExpiredGroups(ctx context.Context, now time.Time) ([]domain.GroupRemainder, error)
	FindGroupRemainders(ctx context.Context, memberID int64) ([]domain.GroupRemainder, error)
	FindRefundLineage(ctx context.Context, eventID int64) ([]domain.Detail, error)
	SumAvailable(ctx context.Context, memberID int64, now time.Time) (int64, error)
	CountByMemberID(ctx context.Context, memberID int64) (int64, error)
	OverrideGroupExpiry(ctx context.Context, earnEventID int64, expireAt time.Time) error
}

type Locker interface {
	TryAcquire(ctx context.Context, key string, acquireTimeout, holdTimeout time.Duration) (string, error)
	Release(ctx context.Context, key, token string) error
}

type MemberDirectory interface {
	MemberExists(ctx context.Context, memberID int64) error
}

// BalanceListener is told about every committed balance change. It must not
// block the caller for long.
type BalanceListener interface {
	OnBalanceChanged(ctx context.Context, memberID int64)
}

type Config struct {
	PageSize        int
	AcquireTimeout  time.Duration
	HoldTimeout     time.Duration
	SweepLockHold   time.Duration
	RetentionMonths int
	SweepWorkers    int
}

func DefaultConfig() Config {
	return Config{
		PageSize:        100,
		AcquireTimeout:  2 * time.Second,
		HoldTimeout:     5 * time.Second,
		SweepLockHold:   10 * time.Minute,
		RetentionMonths: domain.DefaultRetentionMonths,
		SweepWorkers:    4,
	}
}

type Service struct {
	eventRepo  EventRepo
	detailRepo DetailRepo
	txManager  pg.TXManager
	locker     Locker
	members    MemberDirectory
	listener   BalanceListener
	cfg        Config
	now        func() time.Time
	log        *zap.Logger
	sweepLog   *zap.Logger
}

// New builds the ledger core. members and listener may be nil.
func New(eventRepo EventRepo, detailRepo DetailRepo, txManager pg.TXManager, locker Locker,
	members MemberDirectory, listener BalanceListener, cfg Config) *Service {
	defaults := DefaultConfig()
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaults.PageSize
	}
	if cfg.AcquireTimeout <= 0 {
		cfg.AcquireTimeout = defaults.AcquireTimeout
	}
	if cfg.HoldTimeout <= 0 {
		cfg.HoldTimeout = defaults.HoldTimeout
	}
	if cfg.SweepLockHold <= 0 {
		cfg.SweepLockHold = defaults.SweepLockHold
	}
	if cfg.RetentionMonths <= 0 {
		cfg.RetentionMonths = defaults.RetentionMonths
	}
	if cfg.SweepWorkers <= 0 {
		cfg.SweepWorkers = defaults.SweepWorkers
	}

	return &Service{
		eventRepo:  eventRepo,
		detailRepo: detailRepo,
		txManager:  txManager,
		locker:     locker,
		members:    members,
		listener:   listener,
		cfg:        cfg,
		now:        time.Now,
		log:        logger.Named("ledger"),
		sweepLog:   logger.Named("ledger.sweep"),
	}
}

func useLockKey(memberID int64) string {
	return useLockPrefix + strconv.FormatInt(memberID, 10)
}

func (s *Service) Earn(ctx context.Context, memberID, amount int64, reference string) (*domain.Event, error) {
	event, detail, err := domain.NewEarn(memberID, amount, reference, s.now(), s.cfg.RetentionMonths)
	if err != nil {
		return nil, err
	}
	if err := s.checkMember(ctx, memberID); err != nil {
		return nil, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.eventRepo.Create(ctx, event); err != nil {
			return fmt.Errorf("failed to save earn event: %w", err)
		}
		detail.EventID = event.ID
		if _, err := s.detailRepo.Create(ctx, detail); err != nil {
			return fmt.Errorf("failed to save earn detail: %w", err)
		}
		return s.detailRepo.AssignSelfGroup(ctx, detail.ID)
	})
	if err != nil {
		s.log.Error("failed to earn points", zap.Int64("member_id", memberID), zap.Int64("amount", amount), zap.Error(err))
		return nil, err
	}

	s.balanceChanged(ctx, memberID)
	return event, nil
}

func (s *Service) Use(ctx context.Context, memberID, amount int64, reference string) (*domain.Event, error) {
	now := s.now()
	event, err := domain.NewUse(memberID, amount, reference, now)
	if err != nil {
		return nil, err
	}
	if err := s.checkMember(ctx, memberID); err != nil {
		return nil, err
	}

	key := useLockKey(memberID)
	token, err := s.locker.TryAcquire(ctx, key, s.cfg.AcquireTimeout, s.cfg.HoldTimeout)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, domain.ErrConcurrencyBusy
		}
		s.log.Error("failed to acquire use lock", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	defer s.release(ctx, key, token)

	total, err := s.detailRepo.SumAvailable(ctx, memberID, now)
	if err != nil {
		s.log.Error("failed to get balance", zap.Int64("member_id", memberID), zap.Error(err))
		return nil, err
	}
	if total < amount {
		return nil, fmt.Errorf("%w: requested %d, available %d", domain.ErrInsufficientBalance, amount, total)
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		details, err := s.allocate(ctx, memberID, amount, now)
		if err != nil {
			return err
		}
		if _, err := s.eventRepo.Create(ctx, event); err != nil {
			return fmt.Errorf("failed to save use event: %w", err)
		}
		for i := range details {
			details[i].EventID = event.ID
			if _, err := s.detailRepo.Create(ctx, &details[i]); err != nil {
				return fmt.Errorf("failed to save use detail: %w", err)
			}
		}
		return s.detailRepo.MarkRefundable(ctx, event.ID)
	})
	if err != nil {
		if domain.IsInternal(err) {
			s.log.Error("point allocation failed", zap.Int64("member_id", memberID),
				zap.Int64("amount", amount), zap.Int64("available", total), zap.Error(err))
		} else {
			s.log.Error("failed to use points", zap.Int64("member_id", memberID), zap.Error(err))
		}
		return nil, err
	}

	s.balanceChanged(ctx, memberID)
	return event, nil
}

func (s *Service) GetTotal(ctx context.Context, memberID int64) (int64, error) {
	total, err := s.detailRepo.SumAvailable(ctx, memberID, s.now())
	if err != nil {
		s.log.Error("failed to get balance", zap.Int64("member_id", memberID), zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (s *Service) GetEvent(ctx context.Context, eventID int64) (*domain.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrEventNotFound, eventID)
	}
	return event, nil
}

// ListEvents returns the member's events newest first. page is zero-based;
// size is clamped to [1, 100].
func (s *Service) ListEvents(ctx context.Context, memberID int64, page, size int) (*domain.Page[domain.Event], error) {
	if page < 0 {
		page = 0
	}
	switch {
	case size <= 0:
		size = defaultListSize
	case size > maxListSize:
		size = maxListSize
	}

	total, err := s.eventRepo.CountByMemberID(ctx, memberID)
	if err != nil {
		s.log.Error("failed to count events", zap.Int64("member_id", memberID), zap.Error(err))
		return nil, err
	}
	result := &domain.Page[domain.Event]{Items: []domain.Event{}, Page: page, Size: size, Total: total}
	// Compared in pages, page*size may overflow.
	if int64(page) >= (total+int64(size)-1)/int64(size) {
		return result, nil
	}

	events, err := s.eventRepo.FindByMemberID(ctx, memberID, size, page*size)
	if err != nil {
		s.log.Error("failed to list events", zap.Int64("member_id", memberID), zap.Error(err))
		return nil, err
	}
	result.Items = events
	return result, nil
}

// OverrideExpiry moves the expiry of an earn event and its whole group.
// Maintenance and test use only.
func (s *Service) OverrideExpiry(ctx context.Context, eventID int64, expireAt time.Time) error {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.Type != domain.EventEarn {
		return fmt.Errorf("%w: event %d is %s, want %s", domain.ErrBadEventType, eventID, event.Type, domain.EventEarn)
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.eventRepo.OverrideExpiry(ctx, eventID, expireAt); err != nil {
			return err
		}
		return s.detailRepo.OverrideGroupExpiry(ctx, eventID, expireAt)
	})
	if err != nil {
		s.log.Error("failed to override expiry", zap.Int64("event_id", eventID), zap.Error(err))
		return err
	}

	s.log.Warn("point expiry overridden", zap.Int64("event_id", eventID), zap.Time("expire_at", expireAt))
	s.balanceChanged(ctx, event.MemberID)
	return nil
}

func (s *Service) checkMember(ctx context.Context, memberID int64) error {
	if s.members == nil {
		return nil
	}
	return s.members.MemberExists(ctx, memberID)
}

func (s *Service) release(ctx context.Context, key, token string) {
	if err := s.locker.Release(context.WithoutCancel(ctx), key, token); err != nil {
		s.log.Warn("failed to release lock", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) balanceChanged(ctx context.Context, memberID int64) {
	if s.listener != nil {
		s.listener.OnBalanceChanged(ctx, memberID)
	}
}

package pointservice

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/pointledger/internal/domain"
	"github.com/GlebRadaev/pointledger/pkg/lock"
)

// RunExpirySweep zeroes every group past its expiry and reports how many
// groups were expired. Members are processed in parallel, the groups of
// one member in creation order. Only one sweep runs across all instances.
func (s *Service) RunExpirySweep(ctx context.Context) (int, error) {
	token, err := s.locker.TryAcquire(ctx, sweepLockKey, s.cfg.AcquireTimeout, s.cfg.SweepLockHold)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return 0, domain.ErrConcurrencyBusy
		}
		return 0, err
	}
	defer s.release(ctx, sweepLockKey, token)

	now := s.now()
	groups, err := s.detailRepo.FindExpiredGroups(ctx, now)
	if err != nil {
		s.sweepLog.Error("failed to query expired groups", zap.Error(err))
		return 0, err
	}

	var members []int64
	byMember := make(map[int64][]domain.GroupRemainder)
	for _, group := range groups {
		if _, ok := byMember[group.MemberID]; !ok {
			members = append(members, group.MemberID)
		}
		byMember[group.MemberID] = append(byMember[group.MemberID], group)
	}

	var processed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.cfg.SweepWorkers)
	for _, memberID := range members {
		g.Go(func() error {
			n, err := s.expireMember(ctx, memberID, byMember[memberID])
			processed.Add(int64(n))
			return err
		})
	}
	err = g.Wait()

	s.sweepLog.Info("expiry sweep finished", zap.Int("groups", len(groups)),
		zap.Int64("expired", processed.Load()), zap.Int("members", len(members)))
	return int(processed.Load()), err
}

func (s *Service) expireMember(ctx context.Context, memberID int64, groups []domain.GroupRemainder) (int, error) {
	var processed int
	defer func() {
		if processed > 0 {
			s.balanceChanged(ctx, memberID)
		}
	}()

	for _, group := range groups {
		if err := s.expireGroup(ctx, group); err != nil {
			s.sweepLog.Error("failed to expire group", zap.Int64("member_id", memberID),
				zap.Int64("group_id", group.GroupID), zap.Int64("remain", group.Remain), zap.Error(err))
			return processed, err
		}
		processed++
	}
	return processed, nil
}

func (s *Service) expireGroup(ctx context.Context, group domain.GroupRemainder) error {
	event, detail, err := domain.NewExpire(group, s.now())
	if err != nil {
		return err
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.eventRepo.Create(ctx, event); err != nil {
			return fmt.Errorf("failed to save expire event: %w", err)
		}
		detail.EventID = event.ID
		if _, err := s.detailRepo.Create(ctx, detail); err != nil {
			return fmt.Errorf("failed to save expire detail: %w", err)
		}
		return nil
	})
}

package pointservice

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pointledger/internal/domain"
)

// CheckConsistency verifies that the member's groups were consumed first in
// first out and that no group went negative.
func (s *Service) CheckConsistency(ctx context.Context, memberID int64) error {
	groups, err := s.detailRepo.FindGroupRemainders(ctx, memberID)
	if err != nil {
		s.log.Error("failed to load group remainders", zap.Int64("member_id", memberID), zap.Error(err))
		return err
	}
	slices.SortFunc(groups, func(a, b domain.GroupRemainder) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		}
		return 0
	})

	for _, group := range groups {
		if group.Remain < 0 {
			s.log.Error("negative group remainder", zap.Int64("member_id", memberID),
				zap.Int64("group_id", group.GroupID), zap.Int64("remain", group.Remain))
			return fmt.Errorf("%w: group %d has remainder %d", domain.ErrAmountBroken, group.GroupID, group.Remain)
		}
	}

	latestUsed := -1
	for i, group := range groups {
		if group.Used != 0 {
			latestUsed = i
		}
	}
	for _, group := range groups[:max(latestUsed, 0)] {
		if group.Remain != 0 {
			latest := groups[latestUsed]
			s.log.Error("points not consumed in order", zap.Int64("member_id", memberID),
				zap.Int64("group_id", group.GroupID), zap.Int64("remain", group.Remain),
				zap.Int64("latest_used_group_id", latest.GroupID), zap.Int64("latest_used", latest.Used))
			return fmt.Errorf("%w: group %d keeps %d while later group %d is used",
				domain.ErrNotFifoOrder, group.GroupID, group.Remain, latest.GroupID)
		}
	}
	return nil
}

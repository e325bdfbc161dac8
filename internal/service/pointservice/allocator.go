package pointservice

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/pointledger/internal/domain"
)

// allocate debits amount from the member's available groups, oldest first.
// Pages are read before anything is written, so offsets stay stable.
func (s *Service) allocate(ctx context.Context, memberID, amount int64, now time.Time) ([]domain.Detail, error) {
	bound, err := s.detailRepo.CountByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to count details: %w", err)
	}

	var details []domain.Detail
	remaining, offset := amount, 0
	for remaining > 0 {
		if int64(offset) > bound {
			return nil, fmt.Errorf("%w: member %d, offset %d over %d details, %d of %d left",
				domain.ErrUseInfiniteLoop, memberID, offset, bound, remaining, amount)
		}

		groups, err := s.detailRepo.FindAvailableGroups(ctx, memberID, now, s.cfg.PageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to query available groups: %w", err)
		}
		offset += s.cfg.PageSize

		for _, group := range groups {
			debit := min(remaining, group.Remain)
			detail, err := domain.NewUseDetail(group, debit, now)
			if err != nil {
				return nil, err
			}
			details = append(details, detail)

			remaining -= debit
			if remaining == 0 {
				break
			}
		}
	}
	return details, nil
}

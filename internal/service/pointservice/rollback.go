package pointservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pointledger/internal/domain"
)

// Rollback appends a ROLLBACK event whose details reverse every detail of
// the given USE event. The USE event itself is left untouched.
func (s *Service) Rollback(ctx context.Context, eventID int64) (*domain.Event, error) {
	use, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if use.Type != domain.EventUse {
		return nil, fmt.Errorf("%w: event %d is %s, want %s", domain.ErrBadEventType, eventID, use.Type, domain.EventUse)
	}

	lineage, err := s.detailRepo.FindRefundLineage(ctx, eventID)
	if err != nil {
		s.log.Error("failed to load use details", zap.Int64("event_id", eventID), zap.Error(err))
		return nil, err
	}

	event, reversals, err := domain.NewRollback(use, lineage, s.now())
	if err != nil {
		if domain.IsInternal(err) {
			s.log.Error("use event details are inconsistent", zap.Int64("event_id", eventID),
				zap.Int64("member_id", use.MemberID), zap.Int("details", len(lineage)), zap.Error(err))
		}
		return nil, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.eventRepo.Create(ctx, event); err != nil {
			return fmt.Errorf("failed to save rollback event: %w", err)
		}
		for i := range reversals {
			reversals[i].EventID = event.ID
			if _, err := s.detailRepo.Create(ctx, &reversals[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("failed to roll back use event", zap.Int64("event_id", eventID), zap.Error(err))
		return nil, err
	}

	s.balanceChanged(ctx, use.MemberID)
	return event, nil
}

package eventrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pointledger/internal/domain"
	"github.com/GlebRadaev/pointledger/internal/pg"
)

const eventColumns = `id, member_id, amount, reference, rollback_of, type, created_at, expire_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanEvent(row pgx.Row, event *domain.Event) error {
	return row.Scan(&event.ID, &event.MemberID, &event.Amount, &event.Reference,
		&event.RollbackOf, &event.Type, &event.CreatedAt, &event.ExpireAt)
}

func (r *Repository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	query := `
		INSERT INTO point_events (member_id, amount, reference, rollback_of, type, created_at, expire_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, event.MemberID, event.Amount, event.Reference,
		event.RollbackOf, string(event.Type), event.CreatedAt, event.ExpireAt).Scan(&event.ID)
	if err != nil {
		zap.L().Error("can't save point event", zap.Int64("member_id", event.MemberID), zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM point_events
		WHERE id = $1
	`
	var event domain.Event
	err := scanEvent(r.db.QueryRow(ctx, query, id), &event)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find point event", zap.Int64("event_id", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *Repository) FindByMemberID(ctx context.Context, memberID int64, limit, offset int) ([]domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM point_events
		WHERE member_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, memberID, limit, offset)
	if err != nil {
		zap.L().Error("can't get point events", zap.Int64("member_id", memberID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	events := make([]domain.Event, 0, limit)
	for rows.Next() {
		var event domain.Event
		if err := scanEvent(rows, &event); err != nil {
			zap.L().Error("can't scan point event row", zap.Error(err))
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("point event rows failed", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (r *Repository) CountByMemberID(ctx context.Context, memberID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM point_events
		WHERE member_id = $1
	`
	var count int64
	if err := r.db.QueryRow(ctx, query, memberID).Scan(&count); err != nil {
		zap.L().Error("can't count point events", zap.Int64("member_id", memberID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// OverrideExpiry rewrites the expiry of an EARN event. Maintenance and test use only.
func (r *Repository) OverrideExpiry(ctx context.Context, eventID int64, expireAt time.Time) error {
	query := `
		UPDATE point_events
		SET expire_at = $1
		WHERE id = $2 AND type = 'EARN'
	`
	tag, err := r.db.Exec(ctx, query, expireAt, eventID)
	if err != nil {
		zap.L().Error("can't override point event expiry", zap.Int64("event_id", eventID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

package detailrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pointledger/internal/domain"
	"github.com/GlebRadaev/pointledger/internal/pg"
)

const (
	uniqueViolation     = "23505"
	reversalConstraint  = "uq_point_details_reversal"
	detailColumns       = `id, event_id, type, group_id, refund_id, amount, created_at, expire_at`
	groupAggregateQuery = `
		SELECT d.group_id,
		       e.member_id,
		       SUM(d.amount) AS remain,
		       SUM(CASE WHEN d.id = d.group_id THEN d.amount ELSE 0 END) - SUM(d.amount) AS used,
		       MIN(d.created_at) AS created_at,
		       MIN(d.expire_at) AS expire_at
		FROM point_details d
		JOIN point_events e ON e.id = d.event_id
	`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, detail *domain.Detail) (*domain.Detail, error) {
	query := `
		INSERT INTO point_details (event_id, type, group_id, refund_id, amount, created_at, expire_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, detail.EventID, string(detail.Type), detail.GroupID,
		detail.RefundID, detail.Amount, detail.CreatedAt, detail.ExpireAt).Scan(&detail.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == reversalConstraint {
			return nil, domain.ErrAlreadyRolledBack
		}
		zap.L().Error("can't save point detail", zap.Int64("event_id", detail.EventID), zap.Error(err))
		return nil, err
	}
	return detail, nil
}

// AssignSelfGroup makes an earn detail the root of its own group.
func (r *Repository) AssignSelfGroup(ctx context.Context, detailID int64) error {
	query := `
		UPDATE point_details
		SET group_id = id
		WHERE id = $1
	`
	if _, err := r.db.Exec(ctx, query, detailID); err != nil {
		zap.L().Error("can't assign point detail group", zap.Int64("detail_id", detailID), zap.Error(err))
		return err
	}
	return nil
}

// MarkRefundable tags every detail of the event as reversible.
func (r *Repository) MarkRefundable(ctx context.Context, eventID int64) error {
	query := `
		UPDATE point_details
		SET refund_id = id
		WHERE event_id = $1
	`
	if _, err := r.db.Exec(ctx, query, eventID); err != nil {
		zap.L().Error("can't mark point details refundable", zap.Int64("event_id", eventID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindAvailableGroups(ctx context.Context, memberID int64, now time.Time, limit, offset int) ([]domain.GroupRemainder, error) {
	query := groupAggregateQuery + `
		WHERE e.member_id = $1 AND d.expire_at > $2
		GROUP BY d.group_id, e.member_id
		HAVING SUM(d.amount) > 0
		ORDER BY MIN(d.created_at) ASC, d.group_id ASC
		LIMIT $3 OFFSET $4
	`
	return r.queryGroups(ctx, "available", query, memberID, now, limit, offset)
}

func (r *Repository) FindExpiredGroups(ctx context.Context, now time.Time) ([]domain.GroupRemainder, error) {
	query := groupAggregateQuery + `
		WHERE d.expire_at <= $1
		GROUP BY d.group_id, e.member_id
		HAVING SUM(d.amount) > 0
		ORDER BY MIN(d.created_at) ASC, d.group_id ASC
	`
	return r.queryGroups(ctx, "expired", query, now)
}

func (r *Repository) FindGroupRemainders(ctx context.Context, memberID int64) ([]domain.GroupRemainder, error) {
	query := groupAggregateQuery + `
		WHERE e.member_id = $1
		GROUP BY d.group_id, e.member_id
		ORDER BY MIN(d.created_at) ASC, d.group_id ASC
	`
	return r.queryGroups(ctx, "remainders", query, memberID)
}

func (r *Repository) queryGroups(ctx context.Context, kind, query string, args ...any) ([]domain.GroupRemainder, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't query point groups", zap.String("kind", kind), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var groups []domain.GroupRemainder
	for rows.Next() {
		var g domain.GroupRemainder
		if err := rows.Scan(&g.GroupID, &g.MemberID, &g.Remain, &g.Used, &g.CreatedAt, &g.ExpireAt); err != nil {
			zap.L().Error("can't scan point group row", zap.String("kind", kind), zap.Error(err))
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("point group rows failed", zap.String("kind", kind), zap.Error(err))
		return nil, err
	}
	return groups, nil
}

// FindRefundLineage returns the details of a use event together with every
// detail reversing one of them.
func (r *Repository) FindRefundLineage(ctx context.Context, eventID int64) ([]domain.Detail, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM point_details
		WHERE refund_id IN (SELECT id FROM point_details WHERE event_id = $1)
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		zap.L().Error("can't get point detail lineage", zap.Int64("event_id", eventID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var details []domain.Detail
	for rows.Next() {
		var d domain.Detail
		err := rows.Scan(&d.ID, &d.EventID, &d.Type, &d.GroupID, &d.RefundID, &d.Amount, &d.CreatedAt, &d.ExpireAt)
		if err != nil {
			zap.L().Error("can't scan point detail row", zap.Error(err))
			return nil, err
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("point detail rows failed", zap.Error(err))
		return nil, err
	}
	return details, nil
}

func (r *Repository) SumAvailable(ctx context.Context, memberID int64, now time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(d.amount), 0)
		FROM point_details d
		JOIN point_events e ON e.id = d.event_id
		WHERE e.member_id = $1 AND d.expire_at > $2
	`
	var total int64
	if err := r.db.QueryRow(ctx, query, memberID, now).Scan(&total); err != nil {
		zap.L().Error("can't sum point balance", zap.Int64("member_id", memberID), zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) CountByMemberID(ctx context.Context, memberID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM point_details d
		JOIN point_events e ON e.id = d.event_id
		WHERE e.member_id = $1
	`
	var count int64
	if err := r.db.QueryRow(ctx, query, memberID).Scan(&count); err != nil {
		zap.L().Error("can't count point details", zap.Int64("member_id", memberID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// OverrideGroupExpiry rewrites the expiry of every detail of the group rooted
// at the earn event. Maintenance and test use only.
func (r *Repository) OverrideGroupExpiry(ctx context.Context, earnEventID int64, expireAt time.Time) error {
	query := `
		UPDATE point_details
		SET expire_at = $1
		WHERE group_id = (SELECT id FROM point_details WHERE event_id = $2 AND type = 'EARN')
	`
	if _, err := r.db.Exec(ctx, query, expireAt, earnEventID); err != nil {
		zap.L().Error("can't override point group expiry", zap.Int64("event_id", earnEventID), zap.Error(err))
		return err
	}
	return nil
}

package domain

import "time"

type EventType string

const (
	EventEarn     EventType = "EARN"
	EventUse      EventType = "USE"
	EventExpire   EventType = "EXPIRE"
	EventRollback EventType = "ROLLBACK"
)

// Event is one ledger-affecting action of a member. Amount is positive for
// EARN and ROLLBACK, negative for USE and EXPIRE.
type Event struct {
	ID         int64      `db:"id"`
	MemberID   int64      `db:"member_id"`
	Amount     int64      `db:"amount"`
	Reference  string     `db:"reference"`
	RollbackOf *int64     `db:"rollback_of"`
	Type       EventType  `db:"type"`
	CreatedAt  time.Time  `db:"created_at"`
	ExpireAt   *time.Time `db:"expire_at"`
}

// Detail is a single signed movement inside an earn group. Every detail is
// owned by exactly one event; only the parent id is stored on the row.
type Detail struct {
	ID        int64     `db:"id"`
	EventID   int64     `db:"event_id"`
	Type      EventType `db:"type"`
	GroupID   *int64    `db:"group_id"`
	RefundID  *int64    `db:"refund_id"`
	Amount    int64     `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
	ExpireAt  time.Time `db:"expire_at"`
}

// GroupRemainder is the aggregated state of one earn group.
type GroupRemainder struct {
	GroupID   int64     `db:"group_id"`
	MemberID  int64     `db:"member_id"`
	Remain    int64     `db:"remain"`
	Used      int64     `db:"used"`
	CreatedAt time.Time `db:"created_at"`
	ExpireAt  time.Time `db:"expire_at"`
}

// Before reports whether g precedes other in allocation order.
func (g GroupRemainder) Before(other GroupRemainder) bool {
	if g.CreatedAt.Equal(other.CreatedAt) {
		return g.GroupID < other.GroupID
	}
	return g.CreatedAt.Before(other.CreatedAt)
}

type Page[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

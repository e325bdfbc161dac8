package domain

import (
	"fmt"
	"time"
)

// DefaultRetentionMonths is how long earned points stay spendable.
const DefaultRetentionMonths = 12

// NewEarn builds an EARN event and its single detail. The detail's group id
// is assigned by the store once the row has an id.
func NewEarn(memberID, amount int64, reference string, now time.Time, retentionMonths int) (*Event, *Detail, error) {
	if memberID <= 0 {
		return nil, nil, fmt.Errorf("%w: member id is required", ErrInvalidAmount)
	}
	if amount < 0 {
		return nil, nil, fmt.Errorf("%w: earn amount must not be negative, got %d", ErrInvalidAmount, amount)
	}
	if retentionMonths <= 0 {
		retentionMonths = DefaultRetentionMonths
	}

	expireAt := ExpireAtFor(now, retentionMonths)
	event := &Event{
		MemberID:  memberID,
		Amount:    amount,
		Reference: reference,
		Type:      EventEarn,
		CreatedAt: now,
		ExpireAt:  &expireAt,
	}
	detail := &Detail{
		Type:      EventEarn,
		Amount:    amount,
		CreatedAt: now,
		ExpireAt:  expireAt,
	}
	return event, detail, nil
}

// NewUse builds a USE event. Consumption never expires by itself.
func NewUse(memberID, amount int64, reference string, now time.Time) (*Event, error) {
	if memberID <= 0 {
		return nil, fmt.Errorf("%w: member id is required", ErrInvalidAmount)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: use amount must be positive, got %d", ErrInvalidAmount, amount)
	}
	return &Event{
		MemberID:  memberID,
		Amount:    -amount,
		Reference: reference,
		Type:      EventUse,
		CreatedAt: now,
	}, nil
}

// NewUseDetail debits amount from group. The detail carries the group's
// expiry, not the consuming event's.
func NewUseDetail(group GroupRemainder, amount int64, now time.Time) (Detail, error) {
	if amount <= 0 {
		return Detail{}, fmt.Errorf("%w: debit must be positive, got %d", ErrInvalidAmount, amount)
	}
	if amount > group.Remain {
		return Detail{}, fmt.Errorf("%w: debit %d exceeds remainder %d of group %d", ErrAmountBroken, amount, group.Remain, group.GroupID)
	}
	groupID := group.GroupID
	return Detail{
		Type:      EventUse,
		GroupID:   &groupID,
		Amount:    -amount,
		CreatedAt: now,
		ExpireAt:  group.ExpireAt,
	}, nil
}

// NewExpire zeroes the remainder of a group that is past its expiry.
func NewExpire(group GroupRemainder, now time.Time) (*Event, *Detail, error) {
	if group.ExpireAt.After(now) {
		return nil, nil, fmt.Errorf("%w: group %d expires at %s", ErrInvalidExpiry, group.GroupID, group.ExpireAt.Format(time.RFC3339))
	}
	if group.Remain <= 0 {
		return nil, nil, fmt.Errorf("%w: group %d has remainder %d", ErrAmountBroken, group.GroupID, group.Remain)
	}
	groupID := group.GroupID
	event := &Event{
		MemberID:  group.MemberID,
		Amount:    -group.Remain,
		Type:      EventExpire,
		CreatedAt: now,
	}
	detail := &Detail{
		Type:      EventExpire,
		GroupID:   &groupID,
		Amount:    -group.Remain,
		CreatedAt: now,
		ExpireAt:  group.ExpireAt,
	}
	return event, detail, nil
}

// NewRollback reverses a USE event. lineage holds the event's own details
// together with every detail already reversing one of them.
func NewRollback(use *Event, lineage []Detail, now time.Time) (*Event, []Detail, error) {
	if use == nil {
		return nil, nil, ErrEventNotFound
	}
	if use.Type != EventUse {
		return nil, nil, fmt.Errorf("%w: event %d is %s, want %s", ErrBadEventType, use.ID, use.Type, EventUse)
	}

	var net int64
	originals := make([]Detail, 0, len(lineage))
	for _, d := range lineage {
		net += d.Amount
		if d.EventID == use.ID {
			originals = append(originals, d)
		}
	}
	switch {
	case net == 0:
		return nil, nil, fmt.Errorf("%w: event %d", ErrAlreadyRolledBack, use.ID)
	case net > 0:
		return nil, nil, fmt.Errorf("%w: details of use event %d net to %d", ErrAmountBroken, use.ID, net)
	}

	useID := use.ID
	event := &Event{
		MemberID:   use.MemberID,
		Amount:     -net,
		Reference:  use.Reference,
		RollbackOf: &useID,
		Type:       EventRollback,
		CreatedAt:  now,
	}
	reversals := make([]Detail, 0, len(originals))
	for _, d := range originals {
		originalID := d.ID
		reversals = append(reversals, Detail{
			Type:      EventRollback,
			GroupID:   d.GroupID,
			RefundID:  &originalID,
			Amount:    -d.Amount,
			CreatedAt: now,
			ExpireAt:  d.ExpireAt,
		})
	}
	return event, reversals, nil
}

// ExpireAtFor returns the last representable instant of the day that lies
// months after now. Days past the end of the target month are clamped.
func ExpireAtFor(now time.Time, months int) time.Time {
	y, m, d := now.Date()
	target := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, now.Location())
	last := target.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, 23, 59, 59, int(time.Second-time.Microsecond), now.Location())
}

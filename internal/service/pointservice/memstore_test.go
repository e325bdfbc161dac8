package pointservice

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/GlebRadaev/pointledger/internal/domain"
	"github.com/GlebRadaev/pointledger/internal/pg"
)

// memStore is an in-memory ledger store with the same query semantics as
// the PostgreSQL repositories.
type memStore struct {
	mu      sync.Mutex
	txMu    sync.Mutex
	events  []domain.Event
	details []domain.Detail
	nextID  int64
}

type memEvents struct{ *memStore }

type memDetails struct{ *memStore }

func newMemStore() *memStore {
	return &memStore{}
}

func (s *memStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	events := slices.Clone(s.events)
	details := slices.Clone(s.details)
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.events, s.details = events, details
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) memberOf(eventID int64) int64 {
	for _, e := range s.events {
		if e.ID == eventID {
			return e.MemberID
		}
	}
	return 0
}

func (s *memStore) groups(memberID int64, keep func(domain.GroupRemainder) bool) []domain.GroupRemainder {
	byGroup := make(map[int64]*domain.GroupRemainder)
	var order []int64
	for _, d := range s.details {
		if d.GroupID == nil {
			continue
		}
		member := s.memberOf(d.EventID)
		if memberID != 0 && member != memberID {
			continue
		}
		g, ok := byGroup[*d.GroupID]
		if !ok {
			g = &domain.GroupRemainder{GroupID: *d.GroupID, MemberID: member, CreatedAt: d.CreatedAt, ExpireAt: d.ExpireAt}
			byGroup[*d.GroupID] = g
			order = append(order, *d.GroupID)
		}
		g.Remain += d.Amount
		if d.ID == *d.GroupID {
			g.Used += d.Amount
		}
		g.Used -= d.Amount
		if d.CreatedAt.Before(g.CreatedAt) {
			g.CreatedAt = d.CreatedAt
		}
		if d.ExpireAt.Before(g.ExpireAt) {
			g.ExpireAt = d.ExpireAt
		}
	}

	var result []domain.GroupRemainder
	for _, id := range order {
		if keep(*byGroup[id]) {
			result = append(result, *byGroup[id])
		}
	}
	slices.SortFunc(result, func(a, b domain.GroupRemainder) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		}
		return 0
	})
	return result
}

func (r memEvents) Create(_ context.Context, event *domain.Event) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.ID = r.id()
	r.events = append(r.events, *event)
	return event, nil
}

func (r memEvents) FindByID(_ context.Context, id int64) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (r memEvents) FindByMemberID(_ context.Context, memberID int64, limit, offset int) ([]domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var events []domain.Event
	for _, e := range r.events {
		if e.MemberID == memberID {
			events = append(events, e)
		}
	}
	slices.SortFunc(events, func(a, b domain.Event) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	if offset >= len(events) {
		return nil, nil
	}
	return events[offset:min(offset+limit, len(events))], nil
}

func (r memEvents) CountByMemberID(_ context.Context, memberID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, e := range r.events {
		if e.MemberID == memberID {
			n++
		}
	}
	return n, nil
}

func (r memEvents) OverrideExpiry(_ context.Context, eventID int64, expireAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == eventID && r.events[i].Type == domain.EventEarn {
			r.events[i].ExpireAt = &expireAt
			return nil
		}
	}
	return domain.ErrEventNotFound
}

func (r memDetails) Create(_ context.Context, detail *domain.Detail) (*domain.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if detail.RefundID != nil {
		for _, d := range r.details {
			if d.RefundID != nil && *d.RefundID == *detail.RefundID && d.ID != *d.RefundID {
				return nil, domain.ErrAlreadyRolledBack
			}
		}
	}
	detail.ID = r.id()
	r.details = append(r.details, *detail)
	return detail, nil
}

func (r memDetails) AssignSelfGroup(_ context.Context, detailID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.details {
		if r.details[i].ID == detailID {
			id := detailID
			r.details[i].GroupID = &id
		}
	}
	return nil
}

func (r memDetails) MarkRefundable(_ context.Context, eventID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.details {
		if r.details[i].EventID == eventID {
			id := r.details[i].ID
			r.details[i].RefundID = &id
		}
	}
	return nil
}

func (r memDetails) FindAvailableGroups(_ context.Context, memberID int64, now time.Time, limit, offset int) ([]domain.GroupRemainder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	groups := r.groups(memberID, func(g domain.GroupRemainder) bool {
		return g.Remain > 0 && g.ExpireAt.After(now)
	})
	if offset >= len(groups) {
		return nil, nil
	}
	return groups[offset:min(offset+limit, len(groups))], nil
}

func (r memDetails) FindExpiredGroups(_ context.Context, now time.Time) ([]domain.GroupRemainder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.groups(0, func(g domain.GroupRemainder) bool {
		return g.Remain > 0 && !g.ExpireAt.After(now)
	}), nil
}

func (r memDetails) FindGroupRemainders(_ context.Context, memberID int64) ([]domain.GroupRemainder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.groups(memberID, func(domain.GroupRemainder) bool { return true }), nil
}

func (r memDetails) FindRefundLineage(_ context.Context, eventID int64) ([]domain.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	own := make(map[int64]bool)
	for _, d := range r.details {
		if d.EventID == eventID {
			own[d.ID] = true
		}
	}
	var lineage []domain.Detail
	for _, d := range r.details {
		if d.RefundID != nil && own[*d.RefundID] {
			lineage = append(lineage, d)
		}
	}
	return lineage, nil
}

func (r memDetails) SumAvailable(_ context.Context, memberID int64, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, d := range r.details {
		if r.memberOf(d.EventID) == memberID && d.ExpireAt.After(now) {
			total += d.Amount
		}
	}
	return total, nil
}

func (r memDetails) CountByMemberID(_ context.Context, memberID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, d := range r.details {
		if r.memberOf(d.EventID) == memberID {
			n++
		}
	}
	return n, nil
}

func (r memDetails) OverrideGroupExpiry(_ context.Context, earnEventID int64, expireAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var group int64
	for _, d := range r.details {
		if d.EventID == earnEventID && d.GroupID != nil {
			group = *d.GroupID
		}
	}
	for i := range r.details {
		if r.details[i].GroupID != nil && *r.details[i].GroupID == group {
			r.details[i].ExpireAt = expireAt
		}
	}
	return nil
}

package domain

import "errors"

var (
	ErrInvalidAmount       = errors.New("invalid point amount")
	ErrInvalidExpiry       = errors.New("point group has not expired yet")
	ErrInsufficientBalance = errors.New("insufficient point balance")
	ErrConcurrencyBusy     = errors.New("concurrent point request in progress, retry later")
	ErrBadEventType        = errors.New("unexpected point event type")
	ErrAlreadyRolledBack   = errors.New("point event already rolled back")
	ErrEventNotFound       = errors.New("point event not found")
	ErrMemberNotFound      = errors.New("member not found")

	ErrAmountBroken    = errors.New("point amount broken")
	ErrNotFifoOrder    = errors.New("points were not consumed in first-in-first-out order")
	ErrUseInfiniteLoop = errors.New("point allocation exceeded scan bound")
)

// IsInternal reports whether err signals ledger corruption or an allocator
// fault. Callers must not expose the details of such errors.
func IsInternal(err error) bool {
	return errors.Is(err, ErrAmountBroken) ||
		errors.Is(err, ErrNotFifoOrder) ||
		errors.Is(err, ErrUseInfiniteLoop)
}

package booking

import "errors"

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrClientNotFound    = errors.New("client not found")
	ErrPropertyNotFound  = errors.New("property not found")
	ErrPropertyHeld      = errors.New("property already has an active reservation")
	ErrInvalidKind       = errors.New("invalid booking kind")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrPastSchedule      = errors.New("viewing cannot be scheduled in the past")
	ErrCancelNeedsReason = errors.New("cancelling a booking requires a reason")
	ErrInvalidDeposit    = errors.New("invalid deposit amount")
)

package booking

import "time"

type CreateBookingRequest struct {
	ClientID    int64      `json:"client_id" validate:"required"`
	PropertyID  int64      `json:"property_id" validate:"required"`
	Kind        string     `json:"kind" validate:"required"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Notes       string     `json:"notes"`
}

type CancelRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type DepositRequest struct {
	Amount float64 `json:"amount" validate:"required"`
}

type ListFilter struct {
	ClientID   int64
	PropertyID int64
	Status     Status
	Limit      int
	Offset     int
}

type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
	Total    int64     `json:"total"`
}

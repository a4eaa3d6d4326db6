package booking

import (
	"context"

	"estatecrm/internal/domain/activity"
	"estatecrm/internal/domain/client"
	"estatecrm/internal/domain/property"
)

// Repository defines booking data access.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context, f ListFilter) ([]Booking, int64, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	CancelWithReason(ctx context.Context, id int64, reason string) error
	UpdateDeposit(ctx context.Context, id int64, amount float64) error
	HasActiveReservation(ctx context.Context, propertyID int64) (bool, error)
}

// ClientDirectory verifies the booked client exists.
type ClientDirectory interface {
	GetByID(ctx context.Context, id int64) (*client.Client, error)
}

// PropertyDirectory reads units and flips their status as reservations
// come and go.
type PropertyDirectory interface {
	GetByID(ctx context.Context, id int64) (*property.Property, error)
	UpdateStatus(ctx context.Context, id int64, status property.Status) error
}

// ActivityRecorder writes audit entries, best-effort.
type ActivityRecorder interface {
	Record(ctx context.Context, a *activity.Activity) error
}

// NotificationSender pushes fire-and-forget notifications.
type NotificationSender interface {
	NotifyBookingConfirmed(ctx context.Context, agentID, bookingID, clientID int64) error
}

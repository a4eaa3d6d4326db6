package sale

import (
	"context"

	"estatecrm/internal/domain/activity"
	"estatecrm/internal/domain/client"
	"estatecrm/internal/domain/property"
)

// Repository defines sale data access. CreateWithInstallments persists the
// sale, its installment rows and the property status flip in one
// transaction.
type Repository interface {
	CreateWithInstallments(ctx context.Context, s *Sale, installments []Installment) error
	GetByID(ctx context.Context, id int64) (*Sale, error)
	List(ctx context.Context, f ListFilter) ([]Sale, int64, error)
	GetInstallment(ctx context.Context, saleID int64, seq int) (*Installment, error)
	MarkInstallmentPaid(ctx context.Context, installmentID int64) error
}

// ClientDirectory verifies the buying client exists.
type ClientDirectory interface {
	GetByID(ctx context.Context, id int64) (*client.Client, error)
}

// PropertyDirectory reads the unit being sold.
type PropertyDirectory interface {
	GetByID(ctx context.Context, id int64) (*property.Property, error)
}

// ActivityRecorder writes audit entries, best-effort.
type ActivityRecorder interface {
	Record(ctx context.Context, a *activity.Activity) error
}

// NotificationSender pushes fire-and-forget notifications.
type NotificationSender interface {
	NotifySaleRecorded(ctx context.Context, agentID, saleID, clientID int64, amount float64) error
}

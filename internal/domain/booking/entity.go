package booking

import "time"

// Kind distinguishes a property viewing appointment from a unit
// reservation. Only reservations hold the unit.
type Kind string

const (
	KindViewing     Kind = "viewing"
	KindReservation Kind = "reservation"
)

func ValidKind(k Kind) bool {
	return k == KindViewing || k == KindReservation
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Booking ties a client to a property unit, either for a viewing
// appointment or a reservation holding the unit until sale or cancel.
type Booking struct {
	ID         int64 `gorm:"primaryKey;column:id" json:"id"`
	ClientID   int64 `gorm:"column:client_id;index" json:"client_id"`
	PropertyID int64 `gorm:"column:property_id;index" json:"property_id"`
	AgentID    int64 `gorm:"column:agent_id;index" json:"agent_id"`

	Kind   Kind   `gorm:"column:kind" json:"kind"`
	Status Status `gorm:"column:status;index" json:"status"`

	ScheduledAt   *time.Time `gorm:"column:scheduled_at" json:"scheduled_at,omitempty"`
	DepositAmount float64    `gorm:"column:deposit_amount" json:"deposit_amount,omitempty"`
	CancelReason  string     `gorm:"column:cancel_reason" json:"cancel_reason,omitempty"`
	Notes         string     `gorm:"column:notes" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }

// Active reports whether the booking still holds (or may come to hold)
// its unit.
func (b *Booking) Active() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

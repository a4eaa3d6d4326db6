package activity

import "time"

// EntityKind names the record an activity entry is attached to.
type EntityKind string

const (
	KindEnquiry EntityKind = "enquiry"
	KindLead    EntityKind = "lead"
	KindBooking EntityKind = "booking"
	KindSale    EntityKind = "sale"
)

// Activity is an append-only audit entry written after successful
// mutations. Failures to record one never roll back the mutation.
type Activity struct {
	ID         int64      `gorm:"primaryKey;column:id" json:"id"`
	EntityKind EntityKind `gorm:"column:entity_kind;index:idx_activities_entity" json:"entity_kind"`
	EntityID   int64      `gorm:"column:entity_id;index:idx_activities_entity" json:"entity_id"`
	Action     string     `gorm:"column:action" json:"action"`
	Detail     string     `gorm:"column:detail" json:"detail,omitempty"`
	ActorID    int64      `gorm:"column:actor_id;index" json:"actor_id"`
	CreatedAt  time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (Activity) TableName() string { return "activities" }

package notification

import (
	"encoding/json"
	"time"
)

// Type represents notification type
type Type string

const (
	TypeEnquiryAssigned  Type = "enquiry_assigned"  // Agent: enquiry put on their desk
	TypeEnquiryConverted Type = "enquiry_converted" // Owner: enquiry became client + lead
	TypeLeadAssigned     Type = "lead_assigned"     // Agent: lead put on their desk
	TypeLeadStageChanged Type = "lead_stage_changed"
	TypeBookingConfirmed Type = "booking_confirmed" // Lead owner: booking confirmed
	TypeSaleRecorded     Type = "sale_recorded"     // Lead owner: sale closed
)

// Notification is a per-agent inbox entry, also pushed live over the
// websocket hub when the agent is connected.
type Notification struct {
	ID        int64           `gorm:"primaryKey;column:id" json:"id"`
	AgentID   int64           `gorm:"column:agent_id;index:idx_notifications_agent_unread" json:"agent_id"`
	Type      Type            `gorm:"column:type" json:"type"`
	Title     string          `gorm:"column:title" json:"title"`
	Body      string          `gorm:"column:body" json:"body,omitempty"`
	Data      json.RawMessage `gorm:"column:data;type:jsonb" json:"data,omitempty"`
	IsRead    bool            `gorm:"column:is_read;index:idx_notifications_agent_unread" json:"is_read"`
	ReadAt    *time.Time      `gorm:"column:read_at" json:"read_at,omitempty"`
	CreatedAt time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

// SetData encodes the structured payload to JSON.
func (n *Notification) SetData(data map[string]any) error {
	if data == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	n.Data = b
	return nil
}

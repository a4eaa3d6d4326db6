package enquiry

import (
	"time"

	"estatecrm/internal/domain/ownership"
	"estatecrm/internal/pkg/dbtypes"
)

// Status represents enquiry status
type Status string

const (
	StatusNew       Status = "new"
	StatusAssigned  Status = "assigned"
	StatusContacted Status = "contacted"
	StatusConverted Status = "converted_to_client"
	StatusSpam      Status = "spam"
	StatusClosed    Status = "closed"
)

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusAssigned, StatusContacted, StatusConverted, StatusSpam, StatusClosed:
		return true
	}
	return false
}

// Source is the intake channel
type Source string

const (
	SourceWebsite  Source = "website"
	SourcePortal   Source = "portal"
	SourceReferral Source = "referral"
	SourceWalkIn   Source = "walk_in"
	SourceCampaign Source = "campaign"
	SourcePhone    Source = "phone"
)

// Temperature is the lead-quality rating
type Temperature string

const (
	TempHot  Temperature = "hot"
	TempWarm Temperature = "warm"
	TempCold Temperature = "cold"
)

// Enquiry is an inbound contact record, the entry point of the pipeline.
type Enquiry struct {
	ID    int64  `gorm:"primaryKey;column:id" json:"id"`
	Name  string `gorm:"column:name" json:"name"`
	Email string `gorm:"column:email;index" json:"email,omitempty"`
	Phone string `gorm:"column:phone" json:"phone,omitempty"`

	Source      Source      `gorm:"column:source" json:"source"`
	Status      Status      `gorm:"column:status;index" json:"status"`
	Segment     string      `gorm:"column:segment" json:"segment,omitempty"`
	Temperature Temperature `gorm:"column:temperature" json:"temperature,omitempty"`
	Priority    int         `gorm:"column:priority" json:"priority"`

	NextCallDate *time.Time `gorm:"column:next_call_date" json:"next_call_date,omitempty"`
	SnoozedUntil *time.Time `gorm:"column:snoozed_until" json:"snoozed_until,omitempty"`

	// Tags is display metadata only. Ownership lives in the
	// owner_agent_id/pool columns, never in here.
	Tags dbtypes.Tags `gorm:"column:tags;type:text" json:"tags"`

	OwnerAgentID *int64         `gorm:"column:owner_agent_id;index" json:"owner_agent_id,omitempty"`
	Pool         ownership.Pool `gorm:"column:pool;index" json:"pool,omitempty"`

	ConvertedClientID *int64 `gorm:"column:converted_client_id;uniqueIndex" json:"converted_client_id,omitempty"`

	ImportBatchID string `gorm:"column:import_batch_id;index" json:"import_batch_id,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Enquiry) TableName() string { return "enquiries" }

// IsConverted reports whether the enquiry already went through conversion.
func (e *Enquiry) IsConverted() bool {
	return e.Status == StatusConverted || e.ConvertedClientID != nil
}

// Owner resolves the current ownership of the enquiry.
func (e *Enquiry) Owner() ownership.Owner {
	return ownership.Resolve(e.OwnerAgentID, e.Pool)
}

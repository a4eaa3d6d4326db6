package lead

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"estatecrm/internal/domain/ownership"
	"estatecrm/internal/pkg/dbtypes"
)

// Stage represents the kanban column a lead sits in. Any stage can move to
// any other stage; only entry into StageLost is guarded (reason required).
type Stage string

const (
	StageNewEnquiry      Stage = "new_enquiry"
	StageContacted       Stage = "contacted"
	StageQualified       Stage = "qualified"
	StageViewingArranged Stage = "viewing_arranged"
	StageViewed          Stage = "viewed"
	StageOfferMade       Stage = "offer_made"
	StageNegotiating     Stage = "negotiating"
	StageWon             Stage = "won"
	StageLost            Stage = "lost"
)

// ValidStage reports whether s is one of the nine pipeline stages.
func ValidStage(s Stage) bool {
	switch s {
	case StageNewEnquiry, StageContacted, StageQualified, StageViewingArranged,
		StageViewed, StageOfferMade, StageNegotiating, StageWon, StageLost:
		return true
	}
	return false
}

// Lead is a pipeline opportunity tied to a client.
type Lead struct {
	ID         int64  `gorm:"primaryKey;column:id" json:"id"`
	LeadNumber string `gorm:"column:lead_number;uniqueIndex" json:"lead_number"`
	Title      string `gorm:"column:title" json:"title"`

	ClientID   int64  `gorm:"column:client_id;index" json:"client_id"`
	PropertyID *int64 `gorm:"column:property_id;index" json:"property_id,omitempty"`

	Stage             Stage   `gorm:"column:stage;index" json:"stage"`
	EstimatedValue    float64 `gorm:"column:estimated_value" json:"estimated_value,omitempty"`
	BudgetRange       string  `gorm:"column:budget_range" json:"budget_range,omitempty"`
	PropertyType      string  `gorm:"column:property_type" json:"property_type,omitempty"`
	PreferredLocation string  `gorm:"column:preferred_location" json:"preferred_location,omitempty"`
	Description       string  `gorm:"column:description" json:"description,omitempty"`

	// LostReason is required while stage is lost, cleared otherwise.
	LostReason string `gorm:"column:lost_reason" json:"lost_reason,omitempty"`

	Tags dbtypes.Tags `gorm:"column:tags;type:text" json:"tags"`

	OwnerAgentID *int64         `gorm:"column:owner_agent_id;index" json:"owner_agent_id,omitempty"`
	Pool         ownership.Pool `gorm:"column:pool;index" json:"pool,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Lead) TableName() string { return "leads" }

// Owner resolves the current ownership of the lead.
func (l *Lead) Owner() ownership.Owner {
	return ownership.Resolve(l.OwnerAgentID, l.Pool)
}

// IsTerminal reports whether the lead sits in a closing stage. Closing is
// by convention only; kanban re-drags out of won/lost stay legal.
func (l *Lead) IsTerminal() bool {
	return l.Stage == StageWon || l.Stage == StageLost
}

// NewNumber generates a human-readable unique lead code.
func NewNumber() string {
	return "LD-" + strings.ToUpper(uuid.NewString()[:8])
}

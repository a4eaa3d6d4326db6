package lead

type CreateLeadRequest struct {
	Title             string  `json:"title" validate:"required"`
	ClientID          int64   `json:"client_id" validate:"required"`
	PropertyID        *int64  `json:"property_id"`
	EstimatedValue    float64 `json:"estimated_value"`
	BudgetRange       string  `json:"budget_range"`
	PropertyType      string  `json:"property_type"`
	PreferredLocation string  `json:"preferred_location"`
	Description       string  `json:"description"`
	OwnerAgentID      *int64  `json:"owner_agent_id"`
}

type UpdateLeadRequest struct {
	Title             *string  `json:"title"`
	PropertyID        *int64   `json:"property_id"`
	EstimatedValue    *float64 `json:"estimated_value"`
	BudgetRange       *string  `json:"budget_range"`
	PropertyType      *string  `json:"property_type"`
	PreferredLocation *string  `json:"preferred_location"`
	Description       *string  `json:"description"`
	Tags              *[]string `json:"tags"`
}

type UpdateStageRequest struct {
	Stage      string `json:"stage" validate:"required"`
	LostReason string `json:"lost_reason"`
}

type AssignAgentRequest struct {
	AgentID int64 `json:"agent_id" validate:"required"`
}

type AssignPoolRequest struct {
	Pool int `json:"pool" validate:"required"`
}

type AddNoteRequest struct {
	ContactType string `json:"contact_type" validate:"required"`
	Content     string `json:"content" validate:"required"`
}

type ListFilter struct {
	Stage        Stage
	ClientID     int64
	Pool         int
	OwnerAgentID int64
	Limit        int
	Offset       int
}

type LeadListResponse struct {
	Leads []Lead `json:"leads"`
	Total int64  `json:"total"`
}

// StageCounts is the kanban board summary, one bucket per stage.
type StageCounts map[Stage]int64

package enquiry

import "time"

type CreateEnquiryRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Phone       string   `json:"phone"`
	Source      string   `json:"source"`
	Segment     string   `json:"segment"`
	Temperature string   `json:"temperature"`
	Priority    int      `json:"priority"`
	Tags        []string `json:"tags"`
}

type BulkImportRequest struct {
	Enquiries []CreateEnquiryRequest `json:"enquiries" validate:"required,dive"`
}

type BulkImportResponse struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
}

type UpdateEnquiryRequest struct {
	Name         *string    `json:"name"`
	Email        *string    `json:"email"`
	Phone        *string    `json:"phone"`
	Segment      *string    `json:"segment"`
	Temperature  *string    `json:"temperature"`
	Priority     *int       `json:"priority"`
	NextCallDate *time.Time `json:"next_call_date"`
	SnoozedUntil *time.Time `json:"snoozed_until"`
	Tags         *[]string  `json:"tags"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AssignAgentRequest struct {
	AgentID int64 `json:"agent_id" validate:"required"`
}

type AssignPoolRequest struct {
	Pool int `json:"pool" validate:"required"`
}

// ConvertRequest carries the client and lead fields for the one atomic
// multi-entity operation. Client fields default from the enquiry itself.
type ConvertRequest struct {
	Nationality       string `json:"nationality"`
	Country           string `json:"country"`
	BudgetRange       string `json:"budget_range"`
	InvestmentPurpose string `json:"investment_purpose"`

	LeadTitle         string  `json:"lead_title" validate:"required"`
	EstimatedValue    float64 `json:"estimated_value"`
	PropertyType      string  `json:"property_type"`
	PreferredLocation string  `json:"preferred_location"`
	Description       string  `json:"description"`
}

type ConvertResponse struct {
	ClientID int64  `json:"client_id"`
	LeadID   int64  `json:"lead_id"`
	LeadNo   string `json:"lead_number"`
}

type AddNoteRequest struct {
	ContactType string `json:"contact_type" validate:"required"`
	Content     string `json:"content" validate:"required"`
}

type ListFilter struct {
	Status       Status
	Pool         int
	OwnerAgentID int64
	Search       string
	Limit        int
	Offset       int
}

type EnquiryListResponse struct {
	Enquiries []Enquiry `json:"enquiries"`
	Total     int64     `json:"total"`
}

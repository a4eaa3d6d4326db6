package sale

import "time"

type CreateSaleRequest struct {
	ClientID         int64      `json:"client_id" validate:"required"`
	PropertyID       int64      `json:"property_id" validate:"required"`
	LeadID           *int64     `json:"lead_id"`
	SalePrice        float64    `json:"sale_price" validate:"required"`
	CommissionRate   float64    `json:"commission_rate" validate:"required"`
	InstallmentCount int        `json:"installment_count" validate:"required"`
	ClosedAt         *time.Time `json:"closed_at"`
}

type ListFilter struct {
	ClientID int64
	AgentID  int64
	Limit    int
	Offset   int
}

type SaleListResponse struct {
	Sales []Sale `json:"sales"`
	Total int64  `json:"total"`
}

package client

import "time"

// Client is a converted identity record. Exactly one client is created per
// converted enquiry; it owns downstream leads, bookings and sales.
type Client struct {
	ID                int64     `gorm:"primaryKey;column:id" json:"id"`
	Name              string    `gorm:"column:name" json:"name"`
	Email             string    `gorm:"column:email;index" json:"email,omitempty"`
	Phone             string    `gorm:"column:phone" json:"phone,omitempty"`
	Nationality       string    `gorm:"column:nationality" json:"nationality,omitempty"`
	Country           string    `gorm:"column:country" json:"country,omitempty"`
	BudgetRange       string    `gorm:"column:budget_range" json:"budget_range,omitempty"`
	InvestmentPurpose string    `gorm:"column:investment_purpose" json:"investment_purpose,omitempty"`
	SourceEnquiryID   *int64    `gorm:"column:source_enquiry_id;uniqueIndex" json:"source_enquiry_id,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Client) TableName() string { return "clients" }

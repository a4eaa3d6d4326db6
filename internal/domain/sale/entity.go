package sale

import (
	"math"
	"time"
)

// Sale is a closed deal: one property sold to one client, with the agency
// commission split into monthly installments.
type Sale struct {
	ID         int64  `gorm:"primaryKey;column:id" json:"id"`
	ClientID   int64  `gorm:"column:client_id;index" json:"client_id"`
	PropertyID int64  `gorm:"column:property_id;uniqueIndex" json:"property_id"`
	LeadID     *int64 `gorm:"column:lead_id;index" json:"lead_id,omitempty"`
	AgentID    int64  `gorm:"column:agent_id;index" json:"agent_id"`

	SalePrice        float64 `gorm:"column:sale_price" json:"sale_price"`
	CommissionRate   float64 `gorm:"column:commission_rate" json:"commission_rate"`
	CommissionAmount float64 `gorm:"column:commission_amount" json:"commission_amount"`
	InstallmentCount int     `gorm:"column:installment_count" json:"installment_count"`

	ClosedAt  time.Time `gorm:"column:closed_at" json:"closed_at"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	Installments []Installment `gorm:"foreignKey:SaleID" json:"installments,omitempty"`
}

func (Sale) TableName() string { return "sales" }

type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentPaid    InstallmentStatus = "paid"
)

// Installment is one monthly slice of the commission.
type Installment struct {
	ID      int64             `gorm:"primaryKey;column:id" json:"id"`
	SaleID  int64             `gorm:"column:sale_id;index" json:"sale_id"`
	Seq     int               `gorm:"column:seq" json:"seq"`
	Amount  float64           `gorm:"column:amount" json:"amount"`
	DueDate time.Time         `gorm:"column:due_date" json:"due_date"`
	Status  InstallmentStatus `gorm:"column:status" json:"status"`
	PaidAt  *time.Time        `gorm:"column:paid_at" json:"paid_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Installment) TableName() string { return "sale_installments" }

// SplitCommission divides total into n monthly slices, rounded to cents.
// Rounding drift lands on the last slice so the sum always equals total.
func SplitCommission(total float64, n int, firstDue time.Time) []Installment {
	per := math.Round(total/float64(n)*100) / 100

	out := make([]Installment, n)
	var allocated float64
	for i := 0; i < n; i++ {
		amount := per
		if i == n-1 {
			amount = math.Round((total-allocated)*100) / 100
		}
		allocated += amount
		out[i] = Installment{
			Seq:     i + 1,
			Amount:  amount,
			DueDate: firstDue.AddDate(0, i, 0),
			Status:  InstallmentPending,
		}
	}
	return out
}

package property

import "time"

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusSold      Status = "sold"
)

type Type string

const (
	TypeApartment Type = "apartment"
	TypeVilla     Type = "villa"
	TypeTownhouse Type = "townhouse"
	TypePlot      Type = "plot"
)

// Property is an inventory unit that leads and bookings reference.
type Property struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Title     string    `gorm:"column:title" json:"title"`
	Project   string    `gorm:"column:project;index" json:"project,omitempty"`
	Type      Type      `gorm:"column:type" json:"type"`
	Price     float64   `gorm:"column:price" json:"price"`
	Location  string    `gorm:"column:location" json:"location,omitempty"`
	Bedrooms  int       `gorm:"column:bedrooms" json:"bedrooms,omitempty"`
	Status    Status    `gorm:"column:status;index" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Property) TableName() string { return "properties" }

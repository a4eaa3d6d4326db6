package agent

import (
	"time"

	"estatecrm/internal/pkg/policy"
)

// Agent is a CRM user: sales staff, managers and admins.
type Agent struct {
	ID           int64       `gorm:"primaryKey;column:id" json:"id"`
	Email        string      `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string      `gorm:"column:password_hash" json:"-"`
	Name         string      `gorm:"column:name" json:"name"`
	Phone        string      `gorm:"column:phone" json:"phone,omitempty"`
	Role         policy.Role `gorm:"column:role;index" json:"role"`
	Office       string      `gorm:"column:office" json:"office,omitempty"`
	IsActive     bool        `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt    time.Time   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"column:updated_at" json:"updated_at"`
}

func (Agent) TableName() string { return "agents" }

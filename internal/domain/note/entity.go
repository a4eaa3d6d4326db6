package note

import "time"

// ContactType classifies how the contact happened. A dedicated column, not
// a prefix baked into the note body.
type ContactType string

const (
	ContactCall   ContactType = "call"
	ContactEmail  ContactType = "email"
	ContactSpoken ContactType = "spoken"
	ContactNote   ContactType = "note"
)

// ValidContactType reports whether t is one of the known contact types.
func ValidContactType(t ContactType) bool {
	switch t {
	case ContactCall, ContactEmail, ContactSpoken, ContactNote:
		return true
	}
	return false
}

// Note is an append-only contact log entry attached to an enquiry or a
// lead (exactly one of the two references is set).
type Note struct {
	ID          int64       `gorm:"primaryKey;column:id" json:"id"`
	EnquiryID   *int64      `gorm:"column:enquiry_id;index" json:"enquiry_id,omitempty"`
	LeadID      *int64      `gorm:"column:lead_id;index" json:"lead_id,omitempty"`
	AuthorID    int64       `gorm:"column:author_id" json:"author_id"`
	ContactType ContactType `gorm:"column:contact_type" json:"contact_type"`
	Content     string      `gorm:"column:content" json:"content"`
	CreatedAt   time.Time   `gorm:"column:created_at" json:"created_at"`
}

func (Note) TableName() string { return "notes" }

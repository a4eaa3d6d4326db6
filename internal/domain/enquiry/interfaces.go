package enquiry

import (
	"context"

	"estatecrm/internal/domain/activity"
	"estatecrm/internal/domain/agent"
	"estatecrm/internal/domain/client"
	"estatecrm/internal/domain/lead"
	"estatecrm/internal/domain/note"
	"estatecrm/internal/domain/ownership"
)

// Repository defines enquiry data access.
type Repository interface {
	Create(ctx context.Context, e *Enquiry) error
	GetByID(ctx context.Context, id int64) (*Enquiry, error)
	List(ctx context.Context, f ListFilter) ([]Enquiry, int64, error)
	Update(ctx context.Context, e *Enquiry) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
	SetOwnerAgent(ctx context.Context, id, agentID int64) error
	SetPool(ctx context.Context, id int64, pool ownership.Pool) error
	ClearOwner(ctx context.Context, id int64) error

	// Convert persists the client, the lead and the status flip in one
	// transaction. The status write is conditional on the enquiry not
	// already being converted; a lost race returns ErrAlreadyConverted
	// and persists nothing.
	Convert(ctx context.Context, enquiryID int64, cl *client.Client, ld *lead.Lead) error
}

// AgentDirectory is the slice of the agent repo assignment needs.
type AgentDirectory interface {
	GetByID(ctx context.Context, id int64) (*agent.Agent, error)
}

// NoteRepository is the contact-log store.
type NoteRepository interface {
	Create(ctx context.Context, n *note.Note) error
	GetByID(ctx context.Context, id int64) (*note.Note, error)
	ListForEnquiry(ctx context.Context, enquiryID int64) ([]note.Note, error)
	Delete(ctx context.Context, id int64) error
}

// ActivityRecorder writes audit entries, best-effort.
type ActivityRecorder interface {
	Record(ctx context.Context, a *activity.Activity) error
}

// NotificationSender pushes fire-and-forget notifications.
type NotificationSender interface {
	NotifyEnquiryAssigned(ctx context.Context, agentID, enquiryID int64, enquiryName string) error
	NotifyEnquiryConverted(ctx context.Context, agentID, enquiryID, clientID, leadID int64) error
}

package lead

import (
	"context"

	"estatecrm/internal/domain/activity"
	"estatecrm/internal/domain/agent"
	"estatecrm/internal/domain/client"
	"estatecrm/internal/domain/note"
	"estatecrm/internal/domain/ownership"
)

// Repository defines lead data access.
type Repository interface {
	Create(ctx context.Context, l *Lead) error
	GetByID(ctx context.Context, id int64) (*Lead, error)
	List(ctx context.Context, f ListFilter) ([]Lead, int64, error)
	Update(ctx context.Context, l *Lead) error
	UpdateStage(ctx context.Context, id int64, stage Stage, lostReason string) error
	SetOwnerAgent(ctx context.Context, id, agentID int64) error
	SetPool(ctx context.Context, id int64, pool ownership.Pool) error
	ClearOwner(ctx context.Context, id int64) error
	CountByStage(ctx context.Context) (StageCounts, error)
}

// AgentDirectory is the slice of the agent repo assignment needs.
type AgentDirectory interface {
	GetByID(ctx context.Context, id int64) (*agent.Agent, error)
}

// ClientDirectory verifies the client a lead is created for exists.
type ClientDirectory interface {
	GetByID(ctx context.Context, id int64) (*client.Client, error)
}

// NoteRepository is the contact-log store.
type NoteRepository interface {
	Create(ctx context.Context, n *note.Note) error
	GetByID(ctx context.Context, id int64) (*note.Note, error)
	ListForLead(ctx context.Context, leadID int64) ([]note.Note, error)
	Delete(ctx context.Context, id int64) error
}

// ActivityRecorder writes audit entries, best-effort.
type ActivityRecorder interface {
	Record(ctx context.Context, a *activity.Activity) error
}

// NotificationSender pushes fire-and-forget notifications.
type NotificationSender interface {
	NotifyLeadAssigned(ctx context.Context, agentID, leadID int64, leadNumber string) error
	NotifyLeadStageChanged(ctx context.Context, agentID, leadID int64, leadNumber, stage string) error
}

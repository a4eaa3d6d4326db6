package lead

import (
	"context"
	"log"
	"strings"

	"estatecrm/internal/domain/activity"
	"estatecrm/internal/domain/agent"
	"estatecrm/internal/domain/note"
	"estatecrm/internal/domain/ownership"
	"estatecrm/internal/pkg/dbtypes"
	"estatecrm/internal/pkg/policy"
)

// Service owns the lead side of the pipeline: the kanban stage machine,
// reallocation and the contact log.
type Service struct {
	repo       Repository
	agents     AgentDirectory
	clients    ClientDirectory
	notes      NoteRepository
	activities ActivityRecorder
	notifier   NotificationSender
}

func NewService(repo Repository, agents AgentDirectory, clients ClientDirectory, notes NoteRepository, activities ActivityRecorder, notifier NotificationSender) *Service {
	return &Service{
		repo:       repo,
		agents:     agents,
		clients:    clients,
		notes:      notes,
		activities: activities,
		notifier:   notifier,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	cl, err := s.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, ErrClientNotFound
	}

	l := &Lead{
		LeadNumber:        NewNumber(),
		Title:             strings.TrimSpace(req.Title),
		ClientID:          req.ClientID,
		PropertyID:        req.PropertyID,
		Stage:             StageNewEnquiry,
		EstimatedValue:    req.EstimatedValue,
		BudgetRange:       req.BudgetRange,
		PropertyType:      req.PropertyType,
		PreferredLocation: req.PreferredLocation,
		Description:       req.Description,
		OwnerAgentID:      req.OwnerAgentID,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	return l, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Lead, int64, error) {
	return s.repo.List(ctx, f)
}

// Board returns the kanban summary, leads counted per stage.
func (s *Service) Board(ctx context.Context) (StageCounts, error) {
	return s.repo.CountByStage(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateLeadRequest) (*Lead, error) {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.PropertyID != nil {
		l.PropertyID = req.PropertyID
	}
	if req.EstimatedValue != nil {
		l.EstimatedValue = *req.EstimatedValue
	}
	if req.BudgetRange != nil {
		l.BudgetRange = *req.BudgetRange
	}
	if req.PropertyType != nil {
		l.PropertyType = *req.PropertyType
	}
	if req.PreferredLocation != nil {
		l.PreferredLocation = *req.PreferredLocation
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.Tags != nil {
		l.Tags = dbtypes.Tags(*req.Tags)
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// UpdateStage moves the lead to a new stage. Any stage is reachable from
// any other (the board allows free drag), with one guarded edge: entering
// lost requires a reason. Setting the current stage again is a no-op with
// no duplicate side effects. Leaving lost clears the stored reason.
func (s *Service) UpdateStage(ctx context.Context, actorID, id int64, stage Stage, lostReason string) error {
	if !ValidStage(stage) {
		return ErrInvalidStage
	}

	lostReason = strings.TrimSpace(lostReason)
	if stage == StageLost && lostReason == "" {
		return ErrLostNeedsReason
	}
	if stage != StageLost {
		lostReason = ""
	}

	l, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l.Stage == stage {
		return nil
	}

	if err := s.repo.UpdateStage(ctx, id, stage, lostReason); err != nil {
		return err
	}

	s.record(ctx, actorID, id, "stage_changed", string(stage))
	if l.OwnerAgentID != nil {
		if err := s.notifier.NotifyLeadStageChanged(ctx, *l.OwnerAgentID, id, l.LeadNumber, string(stage)); err != nil {
			log.Printf("notify lead stage changed: %v", err)
		}
	}
	return nil
}

// AssignAgent gives the lead a named owner, dropping any pool.
func (s *Service) AssignAgent(ctx context.Context, actorID, id, agentID int64) error {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	a, err := s.agents.GetByID(ctx, agentID)
	if err != nil {
		return err
	}
	if a == nil {
		return agent.ErrAgentNotFound
	}

	if err := s.repo.SetOwnerAgent(ctx, id, agentID); err != nil {
		return err
	}

	s.record(ctx, actorID, id, "assigned_agent", a.Name)
	if err := s.notifier.NotifyLeadAssigned(ctx, agentID, id, l.LeadNumber); err != nil {
		log.Printf("notify lead assigned: %v", err)
	}
	return nil
}

// AssignPool parks the lead in a reallocation pool, dropping any named
// owner. Tags are untouched.
func (s *Service) AssignPool(ctx context.Context, actorID, id int64, poolNum int) error {
	pool, err := ownership.ParsePool(poolNum)
	if err != nil {
		return err
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.SetPool(ctx, id, pool); err != nil {
		return err
	}

	s.record(ctx, actorID, id, "assigned_pool", pool.String())
	return nil
}

// Unassign leaves the lead fully unowned.
func (s *Service) Unassign(ctx context.Context, actorID, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.ClearOwner(ctx, id); err != nil {
		return err
	}

	s.record(ctx, actorID, id, "unassigned", "")
	return nil
}

// AddNote appends a contact log entry, append-only.
func (s *Service) AddNote(ctx context.Context, actorID, id int64, req *AddNoteRequest) (*note.Note, error) {
	contactType := note.ContactType(req.ContactType)
	if !note.ValidContactType(contactType) {
		return nil, ErrInvalidContact
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	n := &note.Note{
		LeadID:      &id,
		AuthorID:    actorID,
		ContactType: contactType,
		Content:     req.Content,
	}
	if err := s.notes.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) ListNotes(ctx context.Context, id int64) ([]note.Note, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.notes.ListForLead(ctx, id)
}

// DeleteNote removes a contact log entry. Authors may delete their own
// notes; managers and admins may delete any.
func (s *Service) DeleteNote(ctx context.Context, actorID int64, actorRole policy.Role, leadID, noteID int64) error {
	n, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return err
	}
	if n == nil || n.LeadID == nil || *n.LeadID != leadID {
		return ErrNoteNotFound
	}

	if n.AuthorID != actorID && !policy.CanModerate(actorRole) {
		return ErrNoteNotAllowed
	}

	return s.notes.Delete(ctx, noteID)
}

func (s *Service) record(ctx context.Context, actorID, leadID int64, action, detail string) {
	err := s.activities.Record(ctx, &activity.Activity{
		EntityKind: activity.KindLead,
		EntityID:   leadID,
		Action:     action,
		Detail:     detail,
		ActorID:    actorID,
	})
	if err != nil {
		log.Printf("record lead activity: %v", err)
	}
}

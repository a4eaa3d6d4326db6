package enquiry

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"estatecrm/internal/domain/activity"
	"estatecrm/internal/domain/agent"
	"estatecrm/internal/domain/client"
	"estatecrm/internal/domain/lead"
	"estatecrm/internal/domain/note"
	"estatecrm/internal/domain/ownership"
	"estatecrm/internal/pkg/dbtypes"
	"estatecrm/internal/pkg/policy"
)

// Service owns the enquiry side of the pipeline: intake, status moves,
// reallocation between agents and pools, and the conversion into a client
// plus lead.
type Service struct {
	repo       Repository
	agents     AgentDirectory
	notes      NoteRepository
	activities ActivityRecorder
	notifier   NotificationSender
}

func NewService(repo Repository, agents AgentDirectory, notes NoteRepository, activities ActivityRecorder, notifier NotificationSender) *Service {
	return &Service{
		repo:       repo,
		agents:     agents,
		notes:      notes,
		activities: activities,
		notifier:   notifier,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateEnquiryRequest) (*Enquiry, error) {
	e := newFromRequest(req, "")
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// BulkImport creates a batch of enquiries sharing one import batch id.
func (s *Service) BulkImport(ctx context.Context, req *BulkImportRequest) (*BulkImportResponse, error) {
	if len(req.Enquiries) == 0 {
		return nil, ErrNothingToImport
	}

	batchID := uuid.NewString()
	imported := 0
	for i := range req.Enquiries {
		e := newFromRequest(&req.Enquiries[i], batchID)
		if err := s.repo.Create(ctx, e); err != nil {
			return nil, err
		}
		imported++
	}

	return &BulkImportResponse{BatchID: batchID, Imported: imported}, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Enquiry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEnquiryNotFound
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Enquiry, int64, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateEnquiryRequest) (*Enquiry, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Segment != nil {
		e.Segment = *req.Segment
	}
	if req.Temperature != nil {
		e.Temperature = Temperature(*req.Temperature)
	}
	if req.Priority != nil {
		e.Priority = *req.Priority
	}
	if req.NextCallDate != nil {
		e.NextCallDate = req.NextCallDate
	}
	if req.SnoozedUntil != nil {
		e.SnoozedUntil = req.SnoozedUntil
	}
	if req.Tags != nil {
		e.Tags = dbtypes.Tags(*req.Tags)
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateStatus moves the enquiry to a new status. The converted status is
// owned by Convert: writing it directly, or writing anything over it, is
// rejected.
func (s *Service) UpdateStatus(ctx context.Context, actorID, id int64, status Status) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}
	if status == StatusConverted {
		return ErrStatusReserved
	}

	e, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e.IsConverted() {
		return ErrStatusReserved
	}
	if e.Status == status {
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.record(ctx, actorID, id, "status_changed", string(status))
	return nil
}

// AssignAgent gives the enquiry a named owner, dropping any pool.
func (s *Service) AssignAgent(ctx context.Context, actorID, id, agentID int64) error {
	e, err := s.GetByID(ctx, id)
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
	if err := s.notifier.NotifyEnquiryAssigned(ctx, agentID, id, e.Name); err != nil {
		log.Printf("notify enquiry assigned: %v", err)
	}
	return nil
}

// AssignPool parks the enquiry in one of the reallocation pools, dropping
// any named owner. Tags are untouched.
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

// Unassign leaves the enquiry fully unowned.
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

// Convert materializes a client and a lead from the enquiry in a single
// atomic operation. The new lead starts at new_enquiry and inherits the
// enquiry's ownership as-is.
func (s *Service) Convert(ctx context.Context, actorID, id int64, req *ConvertRequest) (*ConvertResponse, error) {
	if strings.TrimSpace(req.LeadTitle) == "" {
		return nil, ErrBlankLeadTitle
	}

	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.IsConverted() {
		return nil, ErrAlreadyConverted
	}

	cl := &client.Client{
		Name:              e.Name,
		Email:             e.Email,
		Phone:             e.Phone,
		Nationality:       req.Nationality,
		Country:           req.Country,
		BudgetRange:       req.BudgetRange,
		InvestmentPurpose: req.InvestmentPurpose,
		SourceEnquiryID:   &e.ID,
	}
	if cl.BudgetRange == "" {
		cl.BudgetRange = e.Segment
	}

	ld := &lead.Lead{
		LeadNumber:        lead.NewNumber(),
		Title:             strings.TrimSpace(req.LeadTitle),
		Stage:             lead.StageNewEnquiry,
		EstimatedValue:    req.EstimatedValue,
		BudgetRange:       req.BudgetRange,
		PropertyType:      req.PropertyType,
		PreferredLocation: req.PreferredLocation,
		Description:       req.Description,
		OwnerAgentID:      e.OwnerAgentID,
		Pool:              e.Pool,
	}

	if err := s.repo.Convert(ctx, id, cl, ld); err != nil {
		return nil, err
	}

	s.record(ctx, actorID, id, "converted", ld.LeadNumber)
	if e.OwnerAgentID != nil {
		if err := s.notifier.NotifyEnquiryConverted(ctx, *e.OwnerAgentID, id, cl.ID, ld.ID); err != nil {
			log.Printf("notify enquiry converted: %v", err)
		}
	}

	return &ConvertResponse{ClientID: cl.ID, LeadID: ld.ID, LeadNo: ld.LeadNumber}, nil
}

// AddNote appends a contact log entry. Notes are append-only; there is no
// edit operation.
func (s *Service) AddNote(ctx context.Context, actorID, id int64, req *AddNoteRequest) (*note.Note, error) {
	contactType := note.ContactType(req.ContactType)
	if !note.ValidContactType(contactType) {
		return nil, ErrInvalidContact
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	n := &note.Note{
		EnquiryID:   &id,
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
	return s.notes.ListForEnquiry(ctx, id)
}

// DeleteNote removes a contact log entry. Authors may delete their own
// notes; managers and admins may delete any.
func (s *Service) DeleteNote(ctx context.Context, actorID int64, actorRole policy.Role, enquiryID, noteID int64) error {
	n, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return err
	}
	if n == nil || n.EnquiryID == nil || *n.EnquiryID != enquiryID {
		return ErrNoteNotFound
	}

	if n.AuthorID != actorID && !policy.CanModerate(actorRole) {
		return ErrNoteNotAllowed
	}

	return s.notes.Delete(ctx, noteID)
}

func (s *Service) record(ctx context.Context, actorID, enquiryID int64, action, detail string) {
	err := s.activities.Record(ctx, &activity.Activity{
		EntityKind: activity.KindEnquiry,
		EntityID:   enquiryID,
		Action:     action,
		Detail:     detail,
		ActorID:    actorID,
	})
	if err != nil {
		log.Printf("record enquiry activity: %v", err)
	}
}

func newFromRequest(req *CreateEnquiryRequest, batchID string) *Enquiry {
	source := Source(req.Source)
	if source == "" {
		source = SourceWebsite
	}

	return &Enquiry{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Source:        source,
		Status:        StatusNew,
		Segment:       req.Segment,
		Temperature:   Temperature(req.Temperature),
		Priority:      req.Priority,
		Tags:          dbtypes.Tags(req.Tags),
		ImportBatchID: batchID,
	}
}
